// Command render draws a heatmap SVG from a JSON series file without a server.
//
//	render -in counts.json -out heatmap.svg -id heatmap -locale en
//
// The input is a JSON array of {"date": "YYYY-MM-DD", "count": N} in
// ascending date order.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/jengzang/commit-heatmap-go/internal/heatmap"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/svg"
)

func main() {
	in := flag.String("in", "-", "input JSON file (- for stdin)")
	out := flag.String("out", "-", "output SVG file (- for stdout)")
	id := flag.String("id", "heatmap", "id of the svg surface")
	localeName := flag.String("locale", "en", "month label locale (en, zh)")
	legend := flag.String("legend", "", "optional output file for the color legend")
	flag.Parse()

	locale, err := heatmap.LookupLocale(*localeName)
	if err != nil {
		log.Fatal(err)
	}

	series, err := readSeries(*in)
	if err != nil {
		log.Fatal("Failed to read series:", err)
	}

	doc := svg.NewDocument(*id)
	res, err := heatmap.NewBuilder(locale).Build(series, doc, *id)
	if err != nil {
		log.Fatal("Failed to build heatmap:", err)
	}
	if err := writeDoc(*out, doc); err != nil {
		log.Fatal("Failed to write heatmap:", err)
	}
	log.Printf("[render] %d records, %d years, %d cells, scale max %.2f",
		len(series), len(res.Groups), len(res.Cells), res.Scale.Max)

	if *legend != "" {
		legendDoc := svg.NewDocument("legend")
		if err := res.Scale.Legend(legendDoc, "legend", heatmap.DefaultLegendWidth, heatmap.DefaultLegendTicks); err != nil {
			log.Fatal("Failed to build legend:", err)
		}
		if err := writeDoc(*legend, legendDoc); err != nil {
			log.Fatal("Failed to write legend:", err)
		}
	}
}

func readSeries(path string) ([]models.DailyCount, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var series []models.DailyCount
	if err := json.NewDecoder(r).Decode(&series); err != nil {
		return nil, err
	}
	return series, nil
}

func writeDoc(path string, doc *svg.Document) error {
	if path == "-" {
		return doc.Encode(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
