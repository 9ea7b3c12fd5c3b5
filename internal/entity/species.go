package entity

import "strings"

type Species struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var IrisSpecies = []Species{
	{
		Name:        "Setosa",
		Description: "Iris setosa is the smallest of the three species, recognizable by its short, wide petals and compact flowers. It is native to arctic and subarctic regions and is the easiest species to separate from the other two.",
	},
	{
		Name:        "Versicolor",
		Description: "Iris versicolor, the blue flag iris, sits between the other two species in petal and sepal size. It grows in wetlands across eastern North America and overlaps partially with virginica in its measurements.",
	},
	{
		Name:        "Virginica",
		Description: "Iris virginica is the largest of the three species, with long petals and sepals. It favors coastal plains and marshes in the southeastern United States and is the hardest to distinguish from versicolor.",
	},
}

func SpeciesByName(name string) (Species, bool) {
	for _, s := range IrisSpecies {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Species{}, false
}
