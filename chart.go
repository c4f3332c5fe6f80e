package sketch

import (
	"fmt"
	"strings"
)

// Chart is one parsed diagram document: a pie chart, an xy chart or a
// work-item movement chart. Documents are built once by the dsl package and
// never mutated afterwards.
type Chart interface {
	config() *ChartConfig
}

type PieChart struct {
	Config   *ChartConfig
	ShowData bool
	Title    string
	Data     []PieSlice
}

type PieSlice struct {
	Label string
	Value float64
}

func (c *PieChart) config() *ChartConfig {
	return c.Config
}

func (c *PieChart) Total() float64 {
	var total float64
	for _, d := range c.Data {
		total += d.Value
	}
	return total
}

type SeriesKind int

const (
	Bar SeriesKind = iota
	Line
)

type Series struct {
	Kind SeriesKind
	Data []float64
}

type XAxis struct {
	Labels []string
}

type YAxis struct {
	Title string
	Min   float64
	Max   float64
}

type XYChart struct {
	Config *ChartConfig
	Title  string
	Legend []string
	XAxis  XAxis
	YAxis  YAxis
	Series []Series
}

func (c *XYChart) config() *ChartConfig {
	return c.Config
}

type WorkItem struct {
	ID         string
	FromState  string
	FromPoints int
	ToState    string
	ToPoints   int
}

func (w WorkItem) PointsChange() int {
	return w.ToPoints - w.FromPoints
}

type WorkItemMovement struct {
	Config  *ChartConfig
	Title   string
	Columns []string
	Items   []WorkItem
}

func (c *WorkItemMovement) config() *ChartConfig {
	return c.Config
}

// Validate checks every item of the chart against the declared columns. The
// match is case insensitive. It reports the first violation found and runs
// strictly after a successful parse.
func (c *WorkItemMovement) Validate() error {
	for _, it := range c.Items {
		if columnIndex(c.Columns, it.FromState) < 0 {
			return ValidationError{
				Item:    it.ID,
				State:   it.FromState,
				Columns: c.Columns,
			}
		}
		if columnIndex(c.Columns, it.ToState) < 0 {
			return ValidationError{
				Item:    it.ID,
				State:   it.ToState,
				Columns: c.Columns,
			}
		}
	}
	return nil
}

func columnIndex(columns []string, state string) int {
	for i := range columns {
		if strings.EqualFold(columns[i], state) {
			return i
		}
	}
	return -1
}

type ValidationError struct {
	Item    string
	State   string
	Columns []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("work item %s references column %q which does not exist. Available columns are: %s",
		e.Item, e.State, strings.Join(e.Columns, ", "))
}
