package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete installs and serves bash/zsh completion for the pfc binary. It
// only acts when the shell invokes the binary as a completer, so calling it
// at the top of main is free.
func Complete() {
	globalFlags := map[string]complete.Predictor{
		"prices-file":  predict.Files("*.json"),
		"session-file": predict.Files("*.jsonl"),
	}

	cmd := &complete.Command{
		Flags: globalFlags,
		Sub: map[string]*complete.Command{
			"fetch": {Flags: map[string]complete.Predictor{
				"league": predict.Nothing,
			}},
			"market": {Flags: map[string]complete.Predictor{
				"section": predict.Nothing,
				"search":  predict.Nothing,
				"n":       predict.Something,
			}},
			"invest": {Flags: map[string]complete.Predictor{
				"n":    predict.Something,
				"cost": predict.Something,
			}},
			"loot": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
			}},
			"manual": {Flags: map[string]complete.Predictor{
				"n":     predict.Something,
				"value": predict.Something,
			}},
			"drop":   {},
			"reset":  {},
			"report": {},
			"fmt":    {},
			"topic":  {},
			"assist": {},
		},
	}
	cmd.Complete("pfc")
}
