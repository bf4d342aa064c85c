package board

// Tool identifies a drawing tool.
type Tool string

const (
	ToolFreehand  Tool = "freehand"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolLine      Tool = "line"
)

// valid reports whether t is one of the recognized tools.
func (t Tool) valid() bool {
	switch t {
	case ToolFreehand, ToolRectangle, ToolCircle, ToolLine:
		return true
	}
	return false
}
