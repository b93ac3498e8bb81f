package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// main sanity-checks a CSV export: row count, distance spread, and how many
// rows came through without coordinates or without a distance. With no -file
// it picks the newest export in -dir (the timestamped names sort by age).
func main() {
	dir := flag.String("dir", "outputs", "directory holding aqi_data_*.csv exports")
	file := flag.String("file", "", "check a specific file instead of the newest export")
	flag.Parse()

	target := *file
	if target == "" {
		matches, err := filepath.Glob(filepath.Join(*dir, "aqi_data_*.csv"))
		if err != nil {
			log.Fatal(err)
		}
		if len(matches) == 0 {
			log.Fatalf("no aqi_data_*.csv under %s", *dir)
		}
		sort.Strings(matches)
		target = matches[len(matches)-1]
	}

	f, err := os.Open(target)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Exports carry a BOM for Excel; the decoder strips it so the first
	// header cell compares clean.
	r := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	rows, err := r.ReadAll()
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) == 0 {
		log.Fatalf("%s: empty file", target)
	}

	header := rows[0]
	distCol := indexOf(header, "距離台北車站(公里)")
	latCol := indexOf(header, "緯度")
	if distCol < 0 || latCol < 0 {
		log.Fatalf("%s: expected columns missing from header %v", target, header)
	}

	data := rows[1:]
	fmt.Printf("file: %s\n", target)
	fmt.Printf("rows: %d\n", len(data))

	var (
		count int
		empty int
		zero  int
		sum   float64
		minKm = math.Inf(1)
		maxKm = math.Inf(-1)
	)
	for _, row := range data {
		if row[latCol] == "0" {
			zero++
		}

		cell := row[distCol]
		if cell == "" {
			empty++
			continue
		}
		km, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			log.Fatalf("bad distance cell %q: %v", cell, err)
		}
		count++
		sum += km
		minKm = math.Min(minKm, km)
		maxKm = math.Max(maxKm, km)
	}

	fmt.Printf("distances: %d (empty: %d, zero coordinates: %d)\n", count, empty, zero)
	if count > 0 {
		fmt.Printf("min: %.2f km  max: %.2f km  mean: %.2f km\n", minKm, maxKm, sum/float64(count))
	}

	show := len(data)
	if show > 5 {
		show = 5
	}
	fmt.Println("first rows:")
	for _, row := range data[:show] {
		fmt.Printf("  %v\n", row)
	}
}

func indexOf(header []string, name string) int {
	for i, cell := range header {
		if cell == name {
			return i
		}
	}
	return -1
}
