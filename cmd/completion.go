package cmd

import (
	"log/slog"

	"github.com/etnz/quest/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, err := docs.GetAllTopics()
	if err != nil {
		slog.Debug("cannot list documentation topics", "error", err)
	}
	topics = append(topics, "readme")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":  predict.Files("*"),
			"store": predict.Set{StoreFile, StoreSQLite},
			"db":    predict.Files("*.db"),
			"v":     predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"create": {Flags: map[string]complete.Predictor{
				"k": predict.Set{"simple", "eternal", "checklist"},
				"n": predict.Something,
				"d": predict.Something,
				"p": predict.Something,
				"r": predict.Something,
				"b": predict.Something,
			}},
			"record": {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"list":   {Flags: map[string]complete.Predictor{"plain": predict.Nothing}},
			"status": {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"import": {Flags: map[string]complete.Predictor{"i": predict.Files("*")}},
			"fmt":    {},
			"topic":  {Args: predict.Set(topics)},
			"help":   {},
		},
	}
}
