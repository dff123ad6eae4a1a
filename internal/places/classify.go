package places

import "slices"

const unnamed = "Nome não disponível"

var amenityGroups = []struct {
	category Category
	name     string
	values   []string
}{
	{CategoryFood, "Alimentação", []string{"restaurant", "cafe", "fast_food", "ice_cream", "pizzeria"}},
	{CategoryHealth, "Saúde", []string{"pharmacy", "hospital", "clinic", "doctors"}},
	{CategoryEducation, "Educação", []string{"school", "college", "university", "kindergarten"}},
	{CategoryService, "Serviços", []string{"fuel", "post_office", "bank", "atm"}},
}

var shopValues = []string{"supermarket", "convenience", "hardware", "clothes", "paint"}

// Classify maps OSM tags to a map category. Amenity wins over shop.
func Classify(tags map[string]string) (Category, string) {
	if amenity, ok := tags["amenity"]; ok {
		for _, g := range amenityGroups {
			if slices.Contains(g.values, amenity) {
				return g.category, g.name
			}
		}
	}
	if shop, ok := tags["shop"]; ok && slices.Contains(shopValues, shop) {
		return CategoryShop, "Comércio"
	}
	return CategoryDefault, "Local"
}

// AccessibilityInfo scores the wheelchair tag.
func AccessibilityInfo(tags map[string]string) Accessibility {
	value, ok := tags["wheelchair"]
	if !ok {
		return Accessibility{Status: "unknown", Text: "Informação não disponível", Score: 0}
	}
	switch value {
	case "yes":
		return Accessibility{Status: "yes", Text: "Totalmente Acessível", Score: 10}
	case "limited":
		return Accessibility{Status: "limited", Text: "Acesso Limitado", Score: 6}
	case "no":
		return Accessibility{Status: "no", Text: "Não Acessível", Score: 2}
	default:
		return Accessibility{Status: "unknown", Text: "Informação: " + value, Score: 0}
	}
}
