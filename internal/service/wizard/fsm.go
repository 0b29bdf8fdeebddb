package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type guard func(d *model.ListingDraft) error

// transitions lists the only forward moves. Back is always step-1.
var transitions = map[model.WizardStep]struct {
	to    model.WizardStep
	guard guard
}{
	model.WizardStepDetails:     {to: model.WizardStepSuggestions, guard: detailsComplete},
	model.WizardStepSuggestions: {to: model.WizardStepImage, guard: always},
	model.WizardStepImage:       {to: model.WizardStepAnalysis, guard: imageUploaded},
	model.WizardStepAnalysis:    {to: model.WizardStepReview, guard: analysisDone},
}

// CanAdvance returns nil when the draft may move forward from step.
func CanAdvance(step model.WizardStep, d *model.ListingDraft) error {
	t, ok := transitions[step]
	if !ok {
		return fmt.Errorf("%w: no step after %s", model.ErrWizardStep, step)
	}
	return t.guard(d)
}

func next(step model.WizardStep, d *model.ListingDraft) (model.WizardStep, error) {
	if err := CanAdvance(step, d); err != nil {
		return step, err
	}
	return transitions[step].to, nil
}

func back(step model.WizardStep) (model.WizardStep, error) {
	if step <= model.WizardStepDetails || step > model.WizardStepReview {
		return step, fmt.Errorf("%w: cannot go back from %s", model.ErrWizardStep, step)
	}
	return step - 1, nil
}

func always(*model.ListingDraft) error { return nil }

func detailsComplete(d *model.ListingDraft) error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return errors.Join(model.ErrValidation, fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}
	if d.MOQ < 0 || d.UnitPriceUSD < 0 || d.QtyAvailable < 0 {
		return errors.Join(model.ErrValidation, errors.New("moq, price and quantity must be non-negative"))
	}
	return nil
}

func imageUploaded(d *model.ListingDraft) error {
	if d.Image == nil || len(d.Image.Data) == 0 {
		return errors.Join(model.ErrValidation, errors.New("an image must be uploaded"))
	}
	return nil
}

func analysisDone(d *model.ListingDraft) error {
	if d.Analysis == nil {
		return errors.Join(model.ErrValidation, errors.New("quality analysis has not run"))
	}
	return nil
}
