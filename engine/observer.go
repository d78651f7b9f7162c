package engine

import (
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/records"
)

// Observer is told about everything that happens in a game
type Observer interface {
	OnEvents(gameID string, events []protocol.Event)
	OnRecord(rec protocol.TurnRecord) error
}

// RecordObserver appends every turn record to a stream
type RecordObserver struct {
	w *records.Writer
}

func NewRecordObserver(w *records.Writer) *RecordObserver {
	return &RecordObserver{w: w}
}

func (o *RecordObserver) OnEvents(string, []protocol.Event) {}

func (o *RecordObserver) OnRecord(rec protocol.TurnRecord) error {
	return o.w.Write(rec)
}

// RecordFunc adapts a function into an Observer that only wants records
type RecordFunc func(rec protocol.TurnRecord) error

func (f RecordFunc) OnEvents(string, []protocol.Event) {}

func (f RecordFunc) OnRecord(rec protocol.TurnRecord) error {
	return f(rec)
}
