//go:build board_production_old

package boards

var Selected = ProductionOld
