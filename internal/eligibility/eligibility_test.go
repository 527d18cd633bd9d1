package eligibility

import (
	"testing"

	"github.com/ppiankov/claimready/internal/model"
)

func evaluator() *Evaluator {
	return NewEvaluator(model.DefaultConfig().Eligibility)
}

func TestCheck_Eligible(t *testing.T) {
	result := evaluator().Check(model.ClaimForScoring{
		AmountNIS: 5000,
		Category:  model.CategoryConsumer,
	})

	if result.Verdict != model.VerdictEligible {
		t.Errorf("expected eligible, got %s (blockers: %+v)", result.Verdict, result.Blockers)
	}
	if len(result.Blockers) != 0 {
		t.Errorf("expected no blockers, got %+v", result.Blockers)
	}
}

func TestCheck_AmountAboveCap(t *testing.T) {
	result := evaluator().Check(model.ClaimForScoring{
		AmountNIS: 200_000,
		Category:  model.CategoryConsumer,
	})

	if result.Verdict != model.VerdictIneligible {
		t.Fatalf("expected ineligible, got %s", result.Verdict)
	}

	found := false
	for _, b := range result.Blockers {
		if b.Code == model.BlockerAmountExceedsCap {
			found = true
			if !b.Hard {
				t.Error("expected the amount blocker to be hard")
			}
		}
	}
	if !found {
		t.Error("expected an amount-exceeds-cap blocker")
	}
}

func TestCheck_UnsupportedCategory(t *testing.T) {
	result := evaluator().Check(model.ClaimForScoring{
		AmountNIS: 5000,
		Category:  model.ClaimCategory("defamation"),
	})

	if result.Verdict != model.VerdictIneligible {
		t.Errorf("expected ineligible for unsupported category, got %s", result.Verdict)
	}
}

func TestCheck_MissingCategoryIsBorderline(t *testing.T) {
	result := evaluator().Check(model.ClaimForScoring{AmountNIS: 5000})

	if result.Verdict != model.VerdictBorderline {
		t.Errorf("expected borderline for a claim without a category, got %s", result.Verdict)
	}
	if result.HasHardBlocker() {
		t.Error("missing category must not be a hard blocker")
	}
}

// QuickCheck must never say yes when Check finds a hard blocker.
func TestQuickCheck_AgreesOnHardBlockers(t *testing.T) {
	e := evaluator()

	claims := []model.ClaimForScoring{
		{},
		{AmountNIS: 5000, Category: model.CategoryConsumer},
		{AmountNIS: 200_000, Category: model.CategoryConsumer},
		{AmountNIS: 38_800, Category: model.CategoryRental},
		{AmountNIS: 38_801, Category: model.CategoryRental},
		{AmountNIS: 100, Category: model.ClaimCategory("defamation")},
	}

	for _, c := range claims {
		quick := e.QuickCheck(c)
		full := e.Check(c)
		if quick && full.HasHardBlocker() {
			t.Errorf("QuickCheck passed a claim Check blocks: %+v", c)
		}
		if !quick && !full.HasHardBlocker() {
			t.Errorf("QuickCheck rejected a claim without hard blockers: %+v", c)
		}
	}
}

func TestCheck_CapIsConfigurable(t *testing.T) {
	cfg := model.DefaultConfig().Eligibility
	cfg.MaxAmountNIS = 87_600

	result := NewEvaluator(cfg).Check(model.ClaimForScoring{
		AmountNIS: 50_000,
		Category:  model.CategoryContract,
	})
	if result.Verdict != model.VerdictEligible {
		t.Errorf("expected eligible under the raised cap, got %s", result.Verdict)
	}
}
