package components

import (
	"fmt"
	"strconv"
)

// PreviewID returns the element identifier of a variant group's image preview.
func PreviewID(index int) string {
	return fmt.Sprintf("variant-img-preview-%d", index)
}

func removeOptionURL(id int) string {
	return RemoveOptionPath + "?row=" + strconv.Itoa(id)
}

func previewURL(index int) string {
	return PreviewPath + "?index=" + strconv.Itoa(index)
}
