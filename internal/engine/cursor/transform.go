package cursor

import (
	"github.com/dshills/ayed/internal/engine/buffer"
)

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - Insertion at or before offset: shift offset by the inserted length
//   - Deletion entirely before offset: shift offset back by the deleted length
//   - Deletion spanning offset: move offset to the start of the deletion
//   - Anything after offset: unchanged
func TransformOffset(offset ByteOffset, edit buffer.Edit) ByteOffset {
	switch edit.Kind() {
	case buffer.ChangeInsert:
		if edit.Start() <= offset {
			return offset + edit.Len()
		}
	case buffer.ChangeDelete:
		if edit.End() <= offset {
			return offset - edit.Len()
		}
		if edit.Start() < offset {
			return edit.Start()
		}
	}
	return offset
}
