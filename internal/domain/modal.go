package domain

// ModalName identifies one of the modals a page can render.
// It is also the value of the ?modal= query parameter.
type ModalName string

const (
	ModalCreateActivity ModalName = "create-activity"
	ModalCreateLink     ModalName = "create-link"
	ModalInviteGuests   ModalName = "invite-guests"
	ModalConfirmTrip    ModalName = "confirm-trip"
)

// SubmissionError is the message shown next to a form after a failed submit.
type SubmissionError struct {
	Message string
}

// Modal is the visibility state of one modal plus the error state owned by
// its form. The zero value is a closed modal with no error.
//
// Closed --Open()--> Open --Close()--> Closed. There is no terminal state.
type Modal struct {
	Name  ModalName
	open  bool
	Error *SubmissionError
}

// NewModal returns a closed modal.
func NewModal(name ModalName) *Modal {
	return &Modal{Name: name}
}

// Open makes the modal visible. Opening an open modal is a no-op.
func (m *Modal) Open() {
	m.open = true
}

// Close hides the modal and discards any error held by its form.
func (m *Modal) Close() {
	m.open = false
	m.Error = nil
}

// IsOpen reports whether the modal subtree should be rendered.
func (m *Modal) IsOpen() bool {
	return m.open
}
