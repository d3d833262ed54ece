package logostamp

// FileDoneEvent is emitted once per file, after it was written or failed.
type FileDoneEvent struct {
	// Index is the zero-based position of the file in the batch.
	Index  int
	Total  int
	Result FileResult
}

// EventHandler receives batch progress.
type EventHandler interface {
	OnFileDone(event FileDoneEvent)
}

// BaseEventHandler provides a no-op EventHandler for embedding.
type BaseEventHandler struct{}

// OnFileDone does nothing.
func (BaseEventHandler) OnFileDone(FileDoneEvent) {}

// eventEmitterWrapper adapts EventHandler to app.FileEventEmitter.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnFileDone(index, total int, result FileResult) {
	if e.handler == nil {
		return
	}
	e.handler.OnFileDone(FileDoneEvent{Index: index, Total: total, Result: result})
}
