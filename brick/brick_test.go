package brick

import "testing"

func TestSimpleBrickDefaultBudgetIs60fps(t *testing.T) {
	b := NewSimpleBrick("Test")
	if b.Budget().TotalMS != 16 {
		t.Fatalf("got %d, want 16", b.Budget().TotalMS)
	}
}

func TestSimpleBrickWithAssertionAccumulates(t *testing.T) {
	b := NewSimpleBrick("Test").
		WithAssertion(Assertion{Kind: TextVisible}).
		WithAssertion(Assertion{Kind: ContrastRatio, ContrastMin: 4.5})

	if len(b.Assertions()) != 2 {
		t.Fatalf("got %d assertions, want 2", len(b.Assertions()))
	}
}

func TestSimpleBrickVerifyPassesWithNoCustomCheck(t *testing.T) {
	b := NewSimpleBrick("Test").WithAssertion(Assertion{Kind: TextVisible})
	v := b.Verify()
	if !v.IsValid() {
		t.Fatal("expected verification to pass with no custom check")
	}
	if len(v.Passed) != 1 {
		t.Fatalf("got %d passed, want 1", len(v.Passed))
	}
}

func TestSimpleBrickCustomVerifyFailureSurfaces(t *testing.T) {
	b := NewSimpleBrick("Test").WithCustomVerify(func() bool { return false })
	v := b.Verify()
	if v.IsValid() {
		t.Fatal("expected verification to fail")
	}
	if len(v.Failed) != 1 {
		t.Fatalf("got %d failed, want 1", len(v.Failed))
	}
}

func TestDefaultBrickAlwaysPasses(t *testing.T) {
	d := Default{}
	if !d.Verify().IsValid() {
		t.Fatal("Default brick must always pass verification")
	}
}

func TestUniformBudget(t *testing.T) {
	b := Uniform(32)
	if b.TotalMS != 32 {
		t.Fatalf("got %d, want 32", b.TotalMS)
	}
}
