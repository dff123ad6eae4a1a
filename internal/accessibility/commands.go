package accessibility

import (
	"context"
	"strings"
)

type ActionKind string

const (
	ActionNone           ActionKind = ""
	ActionNavigate       ActionKind = "navigate"
	ActionClosePanel     ActionKind = "close_panel"
	ActionToggleContrast ActionKind = "toggle_contrast"
	ActionFontLarger     ActionKind = "font_larger"
	ActionFontSmaller    ActionKind = "font_smaller"
	ActionReadPage       ActionKind = "read_page"
	ActionScrollUp       ActionKind = "scroll_up"
	ActionScrollDown     ActionKind = "scroll_down"
	ActionStopVoice      ActionKind = "stop_voice"
	ActionOpenMenu       ActionKind = "open_menu"
	ActionBack           ActionKind = "back"
	ActionForward        ActionKind = "forward"
	ActionZoomIn         ActionKind = "zoom_in"
	ActionZoomOut        ActionKind = "zoom_out"
	ActionSearch         ActionKind = "search"
	ActionHelp           ActionKind = "help"
	ActionReset          ActionKind = "reset"
)

type Action struct {
	Kind   ActionKind
	Target string // navigation target, set for ActionNavigate
}

type rule struct {
	phrases []string
	action  Action
}

// rules are checked in order; the first rule with a matching phrase wins, so
// longer phrases precede the single words they contain.
var rules = []rule{
	{[]string{"ir para home", "ir para início", "página inicial"}, Action{ActionNavigate, "home"}},
	{[]string{"ir para sobre", "sobre nós"}, Action{ActionNavigate, "sobre"}},
	{[]string{"ir para plataforma", "plataforma"}, Action{ActionNavigate, "plataforma"}},
	{[]string{"ir para contato", "contato"}, Action{ActionNavigate, "contato"}},
	{[]string{"ir para mapa", "mapa"}, Action{ActionNavigate, "mapa"}},
	{[]string{"fechar painel", "fechar"}, Action{Kind: ActionClosePanel}},
	{[]string{"alto contraste", "contraste"}, Action{Kind: ActionToggleContrast}},
	{[]string{"texto grande", "aumentar fonte"}, Action{Kind: ActionFontLarger}},
	{[]string{"texto pequeno", "diminuir fonte"}, Action{Kind: ActionFontSmaller}},
	{[]string{"ler página", "leitor de tela"}, Action{Kind: ActionReadPage}},
	{[]string{"rolar para cima", "subir"}, Action{Kind: ActionScrollUp}},
	{[]string{"rolar para baixo", "descer"}, Action{Kind: ActionScrollDown}},
	{[]string{"parar voz", "silêncio"}, Action{Kind: ActionStopVoice}},
	{[]string{"calendário", "eventos"}, Action{ActionNavigate, "calendario"}},
	{[]string{"entrar", "login"}, Action{ActionNavigate, "login"}},
	{[]string{"abrir menu", "menu"}, Action{Kind: ActionOpenMenu}},
	{[]string{"voltar", "página anterior"}, Action{Kind: ActionBack}},
	{[]string{"próxima", "página seguinte"}, Action{Kind: ActionForward}},
	{[]string{"zoom in", "ampliar"}, Action{Kind: ActionZoomIn}},
	{[]string{"zoom out", "reduzir zoom"}, Action{Kind: ActionZoomOut}},
	{[]string{"pesquisar", "buscar"}, Action{Kind: ActionSearch}},
	{[]string{"ajuda", "comandos"}, Action{Kind: ActionHelp}},
	{[]string{"redefinir", "restaurar padrão"}, Action{Kind: ActionReset}},
}

// ParseCommand maps a spoken transcript to an action. Unknown phrases yield
// ActionNone.
func ParseCommand(transcript string) Action {
	text := strings.ToLower(strings.TrimSpace(transcript))
	if text == "" {
		return Action{}
	}
	for _, r := range rules {
		for _, p := range r.phrases {
			if strings.Contains(text, p) {
				return r.action
			}
		}
	}
	return Action{}
}

// CommandSource produces recognized speech as text events. The channel is
// closed when the source stops listening.
type CommandSource interface {
	Commands() <-chan string
}

// Run applies every recognized command to the settings and reports it to
// onAction until ctx is done or the source closes. It returns the final
// settings.
func Run(ctx context.Context, src CommandSource, s Settings, onAction func(Action, Settings)) Settings {
	commands := src.Commands()
	for {
		select {
		case <-ctx.Done():
			return s
		case text, ok := <-commands:
			if !ok {
				return s
			}
			a := ParseCommand(text)
			if a.Kind == ActionNone {
				continue
			}
			s = s.Apply(a)
			if onAction != nil {
				onAction(a, s)
			}
		}
	}
}
