package main

import (
	"flag"
	"strconv"

	"github.com/etnz/stock"
	"github.com/etnz/stock/cmd"
	"github.com/etnz/stock/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	c := stock.DefaultCatalog()
	variants := predict.Set{}
	for i := range c.Variants {
		variants = append(variants, strconv.Itoa(i+1))
	}
	sizes := predict.Set{}
	for _, s := range c.Sizes {
		sizes = append(sizes, string(s))
	}
	topics, _ := docs.GetAllTopics()
	periods := predict.Set{"day", "week", "month", "quarter", "year"}

	// predictors by flag name, shared by all subcommands.
	flags := map[string]complete.Predictor{
		"v":    variants,
		"s":    sizes,
		"p":    periods,
		"o":    predict.Files("*"),
		"note": predict.Something,
		"n":    predict.Something,
		"d":    predict.Something,
	}
	// predictors of positional arguments.
	args := map[string]complete.Predictor{
		"import":  predict.Or(predict.Files("*.xlsx"), predict.Files("*.csv")),
		"restore": predict.Files("*.json"),
		"tag":     predict.Set{string(stock.Consume), string(stock.Receive), string(stock.Defect)},
		"export":  predict.Set{"csv", "pivot", "xlsx", "current"},
		"topic":   predict.Set(topics),
	}

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"verbose":  predict.Nothing,
		},
	}
	for _, cmds := range cmd.Groups() {
		for _, sc := range cmds {
			fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
			sc.SetFlags(fs)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: args[sc.Name()]}
			fs.VisitAll(func(f *flag.Flag) {
				p, ok := flags[f.Name]
				if s := sc.Name(); (s == "history" || s == "export") && f.Name == "s" {
					p, ok = predict.Something, true // start date
				}
				if !ok {
					p = predict.Nothing
				}
				sub.Flags[f.Name] = p
			})
			root.Sub[sc.Name()] = sub
		}
	}
	return root
}
