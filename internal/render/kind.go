package render

import "gridsnake/internal/snake"

// kindCell maps a quad kind to the display cell value used for its colour.
func kindCell(k Kind) uint8 {
	switch k {
	case KindHead:
		return snake.CellHead
	case KindFood:
		return snake.CellFood
	default:
		return snake.CellBody
	}
}
