//go:build board_production_new

package boards

var Selected = ProductionNew
