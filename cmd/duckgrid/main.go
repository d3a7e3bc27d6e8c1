package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	"gridlet"
	nt "gridlet/entity"
	"gridlet/source/duck"
	"gridlet/util"
)

// duckgrid loads a csv or newline-json file through duckdb and shows
// it in the grid, columns derived from the file's schema.

func main() {

	filePath := flag.String("file", "", "csv or newline-json file to load")
	pageSize := flag.Int("page", gridlet.DefaultPageSize, "rows per page, 0 shows all")
	density := flag.String("size", "middle", "small, middle, or large")
	logPath := flag.String("log", "duckgrid.log", "log file")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -file <data-file> [-page n]\n", os.Args[0])
		os.Exit(1)
	}

	logFile := util.OpenLog(*logPath, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile, MaxLen: 999}
	ctx := context.Background()

	dk, err := duck.New(lgr)
	if err != nil {
		log.Fatal(err)
	}
	defer dk.Close()

	if err := dk.Load(*filePath); err != nil {
		log.Fatal(err)
	}

	fields, err := dk.Fields()
	if err != nil {
		log.Fatal(err)
	}

	records, err := dk.Records()
	if err != nil {
		log.Fatal(err)
	}
	lgr.Info(ctx, "loaded dataset", "file", *filePath, "rows", len(records))

	mdl := gridlet.New(records, columnsFor(fields),
		gridlet.WithPageSize[nt.Record](*pageSize),
		gridlet.WithSize[nt.Record](gridlet.Size(*density)),
		gridlet.WithName[nt.Record](dk.Name()),
		gridlet.WithLogger[nt.Record](ctx, lgr),
	)

	p := tea.NewProgram(mdl)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// columnsFor derives grid columns from the file schema, pinning the
// first column and sizing by type.
func columnsFor(fields []duck.Field) []gridlet.Column[nt.Record] {

	columns := make([]gridlet.Column[nt.Record], len(fields))
	for i, field := range fields {
		col := gridlet.Column[nt.Record]{
			Key:      field.Name,
			Title:    field.Name,
			Width:    widthFor(field.Type),
			Sortable: true,
		}
		if i == 0 {
			col.Fixed = nt.PinLeft
		}
		columns[i] = col
	}

	return columns
}

func widthFor(fieldType string) int {
	switch {
	case strings.Contains(fieldType, "TIMESTAMP"), strings.Contains(fieldType, "DATE"):
		return 20
	case strings.Contains(fieldType, "VARCHAR"):
		return 18
	}
	return 10
}
