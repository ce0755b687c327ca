package render

// Priority determines draw order within a page. Lower values draw first
type Priority int

const (
	PriorityPaper Priority = iota
	PriorityOrnament
	PriorityHeader
	PriorityContent
	PriorityGrid
	PriorityFooter
)
