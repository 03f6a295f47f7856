package tasksync

// Op names a mutating remote operation.
type Op int

const (
	OpCreate Op = iota
	OpRemove
	OpComplete
)

// User-facing notices, in the language of the day labels.
const (
	NoticeLoadFailed     = "Gagal memuat to do."
	NoticeAdded          = "To do berhasil ditambahkan!"
	NoticeAddFailed      = "Gagal menambahkan to do."
	NoticeDeleted        = "To do berhasil dihapus!"
	NoticeDeleteFailed   = "Gagal menghapus to do."
	NoticeCompleted      = "To do telah dikerjakan!"
	NoticeCompleteFailed = "Gagal menyelesaikan to do."
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SuccessMessage is the notice shown after the operation succeeds.
func (o Op) SuccessMessage() string {
	switch o {
	case OpCreate:
		return NoticeAdded
	case OpRemove:
		return NoticeDeleted
	case OpComplete:
		return NoticeCompleted
	default:
		return ""
	}
}

// FailureMessage is the notice shown after the operation fails.
func (o Op) FailureMessage() string {
	switch o {
	case OpCreate:
		return NoticeAddFailed
	case OpRemove:
		return NoticeDeleteFailed
	case OpComplete:
		return NoticeCompleteFailed
	default:
		return ""
	}
}
