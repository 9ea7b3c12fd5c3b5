package entity

import "strings"

// Example is a fixed preset of measurements representative of one species,
// used to pre-fill the prediction form.
type Example struct {
	Name        string      `json:"name"`
	Measurement Measurement `json:"measurement"`
}

var Examples = []Example{
	{Name: "setosa", Measurement: Measurement{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2}},
	{Name: "versicolor", Measurement: Measurement{SepalLength: 6.2, SepalWidth: 2.9, PetalLength: 4.3, PetalWidth: 1.3}},
	{Name: "virginica", Measurement: Measurement{SepalLength: 6.3, SepalWidth: 3.3, PetalLength: 6.0, PetalWidth: 2.5}},
}

func ExampleByName(name string) (Example, bool) {
	for _, e := range Examples {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Example{}, false
}
