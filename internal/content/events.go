package content

import (
	"errors"
	"sort"
	"time"
)

var ErrInvalidFilter = errors.New("mes must be between 1 and 12")

type Contact struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

type Accessibility struct {
	Rampas             bool `json:"rampas"`
	BanheirosAdaptados bool `json:"banheirosAdaptados"`
	Estacionamento     bool `json:"estacionamento"`
	Interprete         bool `json:"interprete"`
	AudioDescricao     bool `json:"audioDescricao"`
}

type Event struct {
	ID              int           `json:"id"`
	Titulo          string        `json:"titulo"`
	Descricao       string        `json:"descricao"`
	Data            string        `json:"data"` // YYYY-MM-DD
	Horario         string        `json:"horario"`
	Local           string        `json:"local"`
	TipoDeficiencia []string      `json:"tipoDeficiencia"`
	Contato         Contact       `json:"contato"`
	Acessibilidade  Accessibility `json:"acessibilidade"`
}

func (e Event) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, e.Data)
}

// EventFilter selects events of one month. Zero values mean "any".
type EventFilter struct {
	Month int
	Year  int
}

func (f EventFilter) Validate() error {
	if f.Month < 0 || f.Month > 12 {
		return ErrInvalidFilter
	}
	return nil
}

type Calendar struct {
	events []Event
}

func NewCalendar(events []Event) *Calendar {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Data < sorted[j].Data })
	return &Calendar{events: sorted}
}

// DefaultCalendar holds the inclusive events published on the site.
func DefaultCalendar() *Calendar {
	return NewCalendar(defaultEvents)
}

func (c *Calendar) List(f EventFilter) ([]Event, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := []Event{}
	for _, e := range c.events {
		d, err := e.Date()
		if err != nil {
			continue
		}
		if f.Month != 0 && int(d.Month()) != f.Month {
			continue
		}
		if f.Year != 0 && d.Year() != f.Year {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var defaultEvents = []Event{
	{
		ID:              1,
		Titulo:          "Workshop de Informática Inclusiva",
		Descricao:       "Aprenda a usar tecnologias assistivas para navegação na internet e uso de computadores",
		Data:            "2025-10-15",
		Horario:         "14:00",
		Local:           "Centro Comunitário Portão",
		TipoDeficiencia: []string{"Deficiência Visual", "Deficiência Auditiva"},
		Contato:         Contact{Nome: "Maria Silva", Telefone: "(51) 9999-1234", Email: "maria@centroportao.org.br"},
		Acessibilidade:  Accessibility{Rampas: true, BanheirosAdaptados: true, Estacionamento: true, Interprete: true, AudioDescricao: true},
	},
	{
		ID:              2,
		Titulo:          "Grupo de Apoio - Mobilidade Reduzida",
		Descricao:       "Encontro mensal para troca de experiências e apoio mútuo entre pessoas com mobilidade reduzida",
		Data:            "2025-10-20",
		Horario:         "10:00",
		Local:           "UBS Portão - Sala de Reuniões",
		TipoDeficiencia: []string{"Mobilidade Reduzida", "Cadeirantes"},
		Contato:         Contact{Nome: "João Santos", Telefone: "(51) 8888-5678", Email: "joao.santos@saude.rs.gov.br"},
		Acessibilidade:  Accessibility{Rampas: true, BanheirosAdaptados: true, Estacionamento: true},
	},
	{
		ID:              3,
		Titulo:          "Aula de Libras para Iniciantes",
		Descricao:       "Curso básico de Língua Brasileira de Sinais aberto para toda a comunidade",
		Data:            "2025-11-05",
		Horario:         "19:00",
		Local:           "Escola Municipal João da Silva",
		TipoDeficiencia: []string{"Deficiência Auditiva", "Comunidade em Geral"},
		Contato:         Contact{Nome: "Ana Oliveira", Telefone: "(51) 7777-9012", Email: "ana.libras@educacao.portao.rs.gov.br"},
		Acessibilidade:  Accessibility{Rampas: true, BanheirosAdaptados: true, Interprete: true},
	},
}
