package picker_test

import (
	"fmt"

	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/testutil"
)

// ExampleModel_WriteValue shows a range written by a form and read back.
func ExampleModel_WriteValue() {
	opts := models.Options{PickMode: models.PickRange}
	p := picker.New(testutil.NewService(), picker.Config{Options: &opts})
	p.WriteValue(models.DateRange{From: "2024-03-04", To: "2024-03-08"})

	fmt.Println(p.MonthLabel())
	v, _ := p.Output()
	fmt.Println(v)

	// Output:
	// Mar 2024
	// {2024-03-04 2024-03-08}
}

// ExampleModel_NextMonth shows the event emitted by navigation.
func ExampleModel_NextMonth() {
	p := picker.New(testutil.NewService(), picker.Config{})
	ev := p.NextMonth()
	fmt.Println(ev.OldMonth.String, "->", ev.NewMonth.String)

	// Output:
	// 2024-02-01 -> 2024-03-01
}
