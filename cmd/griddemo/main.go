package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"

	"gridlet"
	nt "gridlet/entity"
	"gridlet/util"
)

// griddemo feeds the grid 100 generated rows: id pinned left, a pair
// of action pseudo-columns pinned right, default sort age ascending,
// ten rows per page.

type person struct {
	Id     int
	Name   string
	Age    int
	Street string
	City   string
	Email  string
}

func main() {

	layoutPath := flag.String("layout", "", "yaml layout overriding the built-in columns")
	logPath := flag.String("log", "griddemo.log", "log file")
	flag.Parse()

	logFile := util.OpenLog(*logPath, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile, MaxLen: 999}
	ctx := context.Background()

	people := generate(100)

	columns := defaultColumns()
	opts := []gridlet.Option[person]{
		gridlet.WithDefaultSort[person]("age", nt.Asc),
		gridlet.WithName[person]("griddemo"),
		gridlet.WithLogger[person](ctx, lgr),
	}

	if *layoutPath != "" {
		layout, err := gridlet.LoadLayout[person](*layoutPath)
		if err != nil {
			log.Fatal(err)
		}
		if len(layout.Columns) > 0 {
			columns = layout.Columns
		}
		opts = append(opts, layout.Options()...)
	}

	mdl := gridlet.New(people, columns, opts...)
	lgr.Info(ctx, "starting griddemo", "rows", len(people))

	p := tea.NewProgram(mdl)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultColumns() []gridlet.Column[person] {
	return []gridlet.Column[person]{
		{Key: "id", Title: "Id", Width: 4, Fixed: nt.PinLeft},
		{Key: "name", Title: "Name", Width: 16, Sortable: true},
		{Key: "age", Title: "Age", Width: 6, Sortable: true},
		{Key: "street", Title: "Street", Width: 22},
		{Key: "city", Title: "City", Width: 14},
		{Key: "email", Title: "Email", Width: 26},
		// same field under a second title
		{Key: "age", Title: "Age Too", Width: 8},
		// declared before Del, rendered inside it after the right-pin reversal
		{Key: "id", Title: "Edit", Width: 6, Fixed: nt.PinRight,
			Render: func(val nt.Value, row person) string { return "edit" }},
		{Key: "id", Title: "Del", Width: 6, Fixed: nt.PinRight,
			Render: func(val nt.Value, row person) string { return "del" }},
	}
}

func generate(count int) []person {

	firsts := []string{"Ada", "Bela", "Cleo", "Dov", "Edna", "Felix", "Gwen", "Hugo", "Iris", "Jules"}
	lasts := []string{"Moreno", "Okafor", "Petit", "Quist", "Reyes", "Sato", "Tindal", "Ueda", "Vance", "Wirth"}
	cities := []string{"Duluth", "Moab", "Tulsa", "Provo", "Salem"}

	people := make([]person, count)
	for i := range people {
		first := firsts[i%len(firsts)]
		last := lasts[(i/len(firsts))%len(lasts)]

		people[i] = person{
			Id:     i,
			Name:   fmt.Sprintf("%s %s", first, last),
			Age:    i + 1,
			Street: fmt.Sprintf("%d Larkspur Ln", 100+i),
			City:   cities[i%len(cities)],
			Email:  fmt.Sprintf("%s.%s%d@example.com", first, last, i),
		}
	}

	return people
}
