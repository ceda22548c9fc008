package machine

import "github.com/luckyComet55/whitebox-sim/internal/fsm"

const (
	DocumentEditing fsm.State = "Editing"
	DocumentSaved   fsm.State = "Saved"

	EventSaveDocument fsm.Event = "save_document"
	EventEditDocument fsm.Event = "edit_document"
)

type DocumentEditor struct {
	*machine
}

func NewDocumentEditor() *DocumentEditor {
	f := fsm.NewFSM(DocumentEditing).
		Transition(DocumentEditing, EventSaveDocument, DocumentSaved).
		Transition(DocumentSaved, EventEditDocument, DocumentEditing)

	m := newMachine("document", f, invalidOperation).
		message(EventSaveDocument, "Document saved successfully").
		message(EventEditDocument, "Editing resumed")

	return &DocumentEditor{m}
}

func NewDocumentEditorAt(state fsm.State) (*DocumentEditor, error) {
	de := NewDocumentEditor()
	if err := de.restore(state); err != nil {
		return nil, err
	}
	return de, nil
}

func (de *DocumentEditor) SaveDocument() string {
	return de.fire(EventSaveDocument)
}

func (de *DocumentEditor) EditDocument() string {
	return de.fire(EventEditDocument)
}
