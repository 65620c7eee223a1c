package recorder

import "StockAnalyzer/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.BetaResult) error        { return nil }
func (n *NoopRecorder) RecordRanking(_ []model.RankEntry) error          { return nil }
func (n *NoopRecorder) RecentAnalyses(_ int) ([]model.BetaResult, error) { return nil, nil }
func (n *NoopRecorder) Close() error                                     { return nil }
