package constants

import "fmt"

// TaskStatus is the client-side status vocabulary. The remote store encodes
// it as the integers 0/1/2; Wire and StatusFromWire are the only place that
// mapping lives.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusInProgress
	StatusCompleted
)

func StatusFromWire(v int) (TaskStatus, error) {
	switch v {
	case 0:
		return StatusPending, nil
	case 1:
		return StatusInProgress, nil
	case 2:
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("unknown task status %d", v)
}

func (s TaskStatus) Wire() int {
	return int(s)
}

func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusInProgress:
		return "Em Progresso"
	case StatusCompleted:
		return "Concluída"
	}
	return "Desconhecido"
}

func ParseStatus(v string) (TaskStatus, error) {
	switch v {
	case "0", "pendente":
		return StatusPending, nil
	case "1", "andamento", "em progresso":
		return StatusInProgress, nil
	case "2", "concluida", "concluída":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("invalid status %q", v)
}
