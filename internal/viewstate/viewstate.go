// Package viewstate реализует машину состояний клиентского интерфейса:
// именованные экраны и типизированные события переходов между ними.
// Пакет не зависит от конкретного UI-рантайма; вместе с состоянием экрана
// хранится выбор пользователя — категория, шаблон и редактируемый документ.
package viewstate

import "fmt"

// View — экран клиентского приложения.
type View string

// Экраны приложения.
const (
	ViewLanding   View = "landing"
	ViewTemplates View = "templates"
	ViewEditor    View = "editor"
	ViewDashboard View = "dashboard"
)

// Event — типизированное событие перехода между экранами.
type Event interface {
	isEvent()
}

// OpenLanding возвращает на главный экран и сбрасывает выбор.
type OpenLanding struct{}

// BrowseTemplates открывает галерею шаблонов, опционально с выбранной
// категорией (CategoryID 0 — без фильтра по категории).
type BrowseTemplates struct {
	CategoryID int
}

// OpenEditor открывает редактор: либо для нового документа по шаблону
// (TemplateID задан, DocumentID 0), либо для сохранённого документа
// (DocumentID задан). Допустим только из галереи и из личного кабинета.
type OpenEditor struct {
	TemplateID int
	DocumentID int
}

// OpenDashboard открывает личный кабинет с сохранёнными документами.
type OpenDashboard struct{}

func (OpenLanding) isEvent()     {}
func (BrowseTemplates) isEvent() {}
func (OpenEditor) isEvent()      {}
func (OpenDashboard) isEvent()   {}

// Machine хранит текущий экран и выбор пользователя.
// Новая машина начинает с главного экрана.
type Machine struct {
	view       View
	categoryID int
	templateID int
	documentID int
}

// New создает машину в состоянии главного экрана.
func New() *Machine {
	return &Machine{view: ViewLanding}
}

// View возвращает текущий экран.
func (m *Machine) View() View { return m.view }

// CategoryID возвращает выбранную категорию; 0 — категория не выбрана.
func (m *Machine) CategoryID() int { return m.categoryID }

// TemplateID возвращает выбранный шаблон; 0 — шаблон не выбран.
func (m *Machine) TemplateID() int { return m.templateID }

// DocumentID возвращает редактируемый документ; 0 — документ ещё не сохранён.
func (m *Machine) DocumentID() int { return m.documentID }

// Apply применяет событие к машине. Недопустимый переход возвращает ошибку,
// состояние машины при этом не меняется.
func (m *Machine) Apply(ev Event) error {
	switch e := ev.(type) {
	case OpenLanding:
		m.view = ViewLanding
		m.categoryID, m.templateID, m.documentID = 0, 0, 0
	case BrowseTemplates:
		m.view = ViewTemplates
		m.categoryID = e.CategoryID
		m.templateID, m.documentID = 0, 0
	case OpenEditor:
		if m.view != ViewTemplates && m.view != ViewDashboard {
			return fmt.Errorf("cannot open editor from %s view", m.view)
		}
		if e.TemplateID == 0 && e.DocumentID == 0 {
			return fmt.Errorf("editor requires a template or a document")
		}
		m.view = ViewEditor
		m.templateID = e.TemplateID
		m.documentID = e.DocumentID
	case OpenDashboard:
		m.view = ViewDashboard
		m.templateID, m.documentID = 0, 0
	default:
		return fmt.Errorf("unknown event %T", ev)
	}
	return nil
}
