// textrel-analyze reads a SQLite corpus store and prints a JSON analysis
// report: corpus stats, top tf-idf terms, and top co-occurring pairs with
// their phi correlation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/textrel/pkg/textrel"
	"github.com/cognicore/textrel/pkg/textrel/store/sqlite"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "Path to SQLite corpus database (required)")
		title    = flag.String("title", "corpus analysis", "Report title")
		docs     = flag.String("docs", "", "Optional: comma-separated document ids to restrict the analysis")
		topK     = flag.Int("top", 20, "Entries per report section")
		maxGroup = flag.Int("max-group", 0, "Fail when a document has more distinct terms than this (0 = unbounded)")
		workers  = flag.Int("workers", 0, "Parallel workers for pairwise counting (0 = sequential)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	engine, err := textrel.New(textrel.Options{Store: st})
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}
	defer engine.Close()

	req := textrel.AnalyzeRequest{
		Title:        *title,
		TopK:         *topK,
		MaxGroupSize: *maxGroup,
		Workers:      *workers,
	}
	if *docs != "" {
		for _, id := range strings.Split(*docs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.DocIDs = append(req.DocIDs, id)
			}
		}
	}

	rep, err := engine.Analyze(ctx, req)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}

	fmt.Fprintf(os.Stderr, "report %s: %d docs, %d distinct terms\n",
		rep.ID, rep.Stats.Docs, rep.Stats.DistinctTerms)
}
