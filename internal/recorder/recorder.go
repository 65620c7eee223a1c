package recorder

import "StockAnalyzer/internal/model"

// Recorder keeps a history of analysis results.
type Recorder interface {
	RecordAnalysis(res *model.BetaResult) error
	RecordRanking(entries []model.RankEntry) error
	RecentAnalyses(limit int) ([]model.BetaResult, error)
	Close() error
}
