package progress

// Backend is the injected persistence medium for the snapshot
// document. Load returns (nil, nil) when nothing has been persisted
// yet; any other error is treated as storage being unavailable, which
// degrades the store to memory-only operation rather than failing a
// command.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// ExportRecorder is an optional backend capability: keeping the most
// recent export under a second well-known key for interoperability.
type ExportRecorder interface {
	RecordExport(data []byte) error
}

// MemoryBackend keeps the snapshot in process memory. Used by tests
// and as the fallback when no storage medium is available.
type MemoryBackend struct {
	data   []byte
	export []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load() ([]byte, error) {
	return m.data, nil
}

func (m *MemoryBackend) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryBackend) Clear() error {
	m.data = nil
	return nil
}

func (m *MemoryBackend) RecordExport(data []byte) error {
	m.export = append([]byte(nil), data...)
	return nil
}
