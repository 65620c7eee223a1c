package analysis

import (
	"context"
	"errors"
	"fmt"

	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/notifier"
)

// Dialog is the rendered outcome of one action.
type Dialog struct {
	Title string
	Body  string
	Err   error
}

// FundamentalDialog runs the fundamental action and renders its dialog.
func (s *Service) FundamentalDialog(ctx context.Context, name string) Dialog {
	rec, err := s.Fundamental(ctx, name)
	if errors.Is(err, model.ErrUnknownInstrument) {
		return Dialog{Title: notifier.FundamentalTitle(name), Body: notifier.FormatNoFundamentals(), Err: err}
	}
	if err != nil {
		return errorDialog(err)
	}
	return Dialog{Title: notifier.FundamentalTitle(name), Body: notifier.FormatFundamental(rec)}
}

// TechnicalDialog runs the technical action and renders its dialog.
func (s *Service) TechnicalDialog(ctx context.Context, name string) Dialog {
	res, err := s.Technical(ctx, name)
	if err != nil {
		return errorDialog(err)
	}
	return Dialog{Title: notifier.TechnicalTitle(name), Body: notifier.FormatTechnical(*res)}
}

// RankDialog runs the ranking action and renders its dialog.
func (s *Service) RankDialog(ctx context.Context) Dialog {
	entries, err := s.Rank(ctx)
	if err != nil {
		return errorDialog(err)
	}
	return Dialog{Title: notifier.TitleRanking, Body: notifier.FormatRanking(entries)}
}

func errorDialog(err error) Dialog {
	return Dialog{Title: notifier.TitleError, Body: ErrorMessage(err), Err: err}
}

// ErrorMessage turns an action error into the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingFile):
		return fmt.Sprintf("Cannot continue, %v.", err)
	case errors.Is(err, model.ErrInsufficientData):
		return "Not enough data."
	case errors.Is(err, model.ErrInvalidInput):
		return fmt.Sprintf("Invalid price data: %v", err)
	case errors.Is(err, model.ErrUnknownInstrument):
		return fmt.Sprintf("Unknown instrument: %v", err)
	default:
		return err.Error()
	}
}
