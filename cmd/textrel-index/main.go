// textrel-index ingests documents from a JSONL file into a SQLite corpus
// store, tokenizing and aggregating term counts on the way in.
//
// Input format, one document per line:
//
//	{"id": "doc-1", "title": "...", "text": "...", "meta": {"k": "v"}}
//
// With -html the text field is parsed as HTML and reduced to visible text.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/textrel/internal/htmltext"
	"github.com/cognicore/textrel/pkg/textrel"
	"github.com/cognicore/textrel/pkg/textrel/config"
	"github.com/cognicore/textrel/pkg/textrel/store"
	"github.com/cognicore/textrel/pkg/textrel/store/sqlite"
)

type inputDoc struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Text  string            `json:"text"`
	Meta  map[string]string `json:"meta,omitempty"`
}

func main() {
	var (
		dbPath       = flag.String("db", "", "Path to SQLite corpus database (required)")
		input        = flag.String("input", "", "Path to JSONL file (required)")
		htmlInput    = flag.Bool("html", false, "Treat each document's text as HTML")
		tokenizerCfg = flag.String("tokenizer", "", "Optional: tokenizer YAML config")
		stoplistCfg  = flag.String("stoplist", "", "Optional: stoplist YAML config")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *input == "" {
		log.Fatal("--input required")
	}

	loader := &config.Loader{
		TokenizerPath: *tokenizerCfg,
		StoplistPath:  *stoplistCfg,
	}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	engine, err := textrel.New(textrel.Options{
		Store:     st,
		Tokenizer: comp.Options,
		Stops:     comp.Stops,
	})
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}
	defer engine.Close()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	ingested, skipped := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var in inputDoc
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			log.Printf("skip malformed line: %v", err)
			skipped++
			continue
		}

		var lines []string
		if *htmlInput {
			lines = htmltext.Lines(in.Text)
		} else {
			for _, l := range strings.Split(in.Text, "\n") {
				if l = strings.TrimSpace(l); l != "" {
					lines = append(lines, l)
				}
			}
		}

		err := engine.Ingest(ctx, store.Doc{
			ID:    in.ID,
			Title: in.Title,
			Lines: lines,
			Meta:  in.Meta,
		})
		if err != nil {
			log.Printf("skip %q: %v", in.ID, err)
			skipped++
			continue
		}
		ingested++
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}

	fmt.Printf("ingested %d documents (%d skipped) into %s\n", ingested, skipped, *dbPath)
}
