package viewmodel

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeDanger  NoticeKind = "danger"
)

// Notice is the single transient message shown to the user.
type Notice struct {
	Kind    NoticeKind
	Message string
}
