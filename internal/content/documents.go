package content

type Format struct {
	Type string `json:"type"`
	Size string `json:"size"`
}

type Document struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Formats     []Format `json:"formats"`
}

func bothFormats() []Format {
	return []Format{{Type: "PDF", Size: "—"}, {Type: "DOCX", Size: "—"}}
}

// Documents lists the research plans and reports shown on the documentation page.
func Documents() []Document {
	return []Document{
		{ID: 1, Title: "Plano de Pesquisa 2024", Description: "Diretrizes, objetivos e cronograma da pesquisa de 2024.", Category: "Planejamento", Formats: bothFormats()},
		{ID: 2, Title: "Relatório Final 2024", Description: "Resultados, análises e conclusões do ciclo 2024.", Category: "Relatório", Formats: bothFormats()},
		{ID: 3, Title: "Plano de Pesquisa 2025", Description: "Planejamento atualizado e metas para 2025.", Category: "Planejamento", Formats: bothFormats()},
		{ID: 4, Title: "Relatório Final 2025", Description: "Relatório consolidado com resultados de 2025.", Category: "Relatório", Formats: bothFormats()},
	}
}
