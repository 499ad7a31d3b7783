// Package renderer turns quest goals into markdown reports.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/quest"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// cell escapes text to fit in a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

var hundred = decimal.NewFromInt(100)

// percent returns n/d as a percentage with one decimal, or "-" when d is 0.
func percent(n, d int) string {
	if d == 0 {
		return "-"
	}
	p := decimal.NewFromInt(int64(n)).Mul(hundred).Div(decimal.NewFromInt(int64(d)))
	return p.StringFixed(1) + "%"
}

// kindLabel is the short name of a goal type, as typed on the command line.
func kindLabel(k quest.GoalType) string {
	switch k {
	case quest.TypeSimple:
		return "simple"
	case quest.TypeEternal:
		return "eternal"
	case quest.TypeChecklist:
		return "checklist"
	default:
		return string(k)
	}
}

// progress describes how far a goal is.
func progress(g quest.Goal) string {
	switch v := g.(type) {
	case *quest.SimpleGoal:
		if v.Completed() {
			return "[X]"
		}
		return "[ ]"
	case *quest.EternalGoal:
		return "ongoing"
	case *quest.ChecklistGoal:
		return fmt.Sprintf("%d/%d (%s)", v.CurrentCount(), v.RequiredCount(), percent(v.CurrentCount(), v.RequiredCount()))
	default:
		return g.DisplayProgress()
	}
}

// points describes what a goal pays.
func points(g quest.Goal) string {
	if v, ok := g.(*quest.ChecklistGoal); ok && v.BonusPoints() != 0 {
		return fmt.Sprintf("%d (+%d)", v.Points(), v.BonusPoints())
	}
	return fmt.Sprint(g.Points())
}

// Goals renders the goals as a numbered markdown table. Numbers start at 1,
// as expected by the record command.
func Goals(goals []quest.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Goal", "Description", "Kind", "Points", "Progress"},
		Rows:   [][]string{},
	}
	for i, g := range goals {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			cell(g.Name()),
			cell(g.Description()),
			kindLabel(g.Kind()),
			points(g),
			progress(g),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Summary renders the total points and, per goal kind, how many goals are
// completed.
func Summary(total int, goals []quest.Goal) string {
	type stat struct{ count, completed int }
	stats := make(map[quest.GoalType]*stat)
	kinds := []quest.GoalType{quest.TypeSimple, quest.TypeEternal, quest.TypeChecklist}
	for _, k := range kinds {
		stats[k] = &stat{}
	}

	finite, done := 0, 0 // eternal goals cannot be completed
	for _, g := range goals {
		s, ok := stats[g.Kind()]
		if !ok {
			continue
		}
		s.count++
		if g.IsComplete() {
			s.completed++
			done++
		}
		if g.Kind() != quest.TypeEternal {
			finite++
		}
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.PlainText(fmt.Sprintf("Total Points: %d", total))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Kind", "Goals", "Completed"},
		Rows:      [][]string{},
	}
	for _, k := range kinds {
		s := stats[k]
		table.Rows = append(table.Rows, []string{kindLabel(k), fmt.Sprint(s.count), fmt.Sprint(s.completed)})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Completion: %s", md.Bold(percent(done, finite))))

	return doc.String()
}
