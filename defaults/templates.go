package defaults

import "idfgen/model"

// baseTemplates returns the unadjusted building-type templates, one
// per supported primary use. System selection: Office
// and School host daylighting and DCV so both get VAV; Retail,
// Warehouse, and Restaurant get RTU; ResidentialSingle gets a
// HeatPump; ResidentialMulti and Hotel get PTAC; Hospital gets
// ChilledWater. Other falls back to the Office template at Resolve
// time, so it has no entry here.
func baseTemplates() map[model.BuildingType]BuildingTemplate {
	return map[model.BuildingType]BuildingTemplate{
		model.Office: {
			BuildingType:     model.Office,
			HVACType:         model.HVACVAV,
			LightingWm2:      9.0,
			EquipmentWm2:     8.0,
			OccupancyPplM2:   0.05,
			InfiltrationACH:  0.3,
			WWR:              0.4,
			TargetCellAreaM2: 120,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceOfficeOpen, Fraction: 0.65, Perimeter: true},
				{SpaceType: model.SpaceConference, Fraction: 0.15},
				{SpaceType: model.SpaceStorage, Fraction: 0.10},
				{SpaceType: model.SpaceLobby, Fraction: 0.10, Perimeter: true},
			},
		},
		model.Retail: {
			BuildingType:     model.Retail,
			HVACType:         model.HVACRTU,
			LightingWm2:      14.0,
			EquipmentWm2:     5.0,
			OccupancyPplM2:   0.15,
			InfiltrationACH:  0.5,
			WWR:              0.3,
			TargetCellAreaM2: 200,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceSalesFloor, Fraction: 0.80, Perimeter: true},
				{SpaceType: model.SpaceStorage, Fraction: 0.20},
			},
		},
		model.School: {
			BuildingType:     model.School,
			HVACType:         model.HVACVAV,
			LightingWm2:      10.0,
			EquipmentWm2:     6.0,
			OccupancyPplM2:   0.20,
			InfiltrationACH:  0.4,
			WWR:              0.35,
			TargetCellAreaM2: 90,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceClassroom, Fraction: 0.70, Perimeter: true},
				{SpaceType: model.SpaceConference, Fraction: 0.10},
				{SpaceType: model.SpaceStorage, Fraction: 0.10},
				{SpaceType: model.SpaceLobby, Fraction: 0.10, Perimeter: true},
			},
		},
		model.Hospital: {
			BuildingType:     model.Hospital,
			HVACType:         model.HVACChilledWater,
			LightingWm2:      12.0,
			EquipmentWm2:     15.0,
			OccupancyPplM2:   0.08,
			InfiltrationACH:  0.25,
			WWR:              0.3,
			TargetCellAreaM2: 60,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceWard, Fraction: 0.60, Perimeter: true},
				{SpaceType: model.SpaceStorage, Fraction: 0.15},
				{SpaceType: model.SpaceMechanical, Fraction: 0.10},
				{SpaceType: model.SpaceLobby, Fraction: 0.15, Perimeter: true},
			},
		},
		model.ResidentialSingle: {
			BuildingType:     model.ResidentialSingle,
			HVACType:         model.HVACHeatPump,
			LightingWm2:      6.0,
			EquipmentWm2:     5.0,
			OccupancyPplM2:   0.03,
			InfiltrationACH:  0.6,
			WWR:              0.25,
			TargetCellAreaM2: 80,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceLivingRoom, Fraction: 0.70, Perimeter: true},
				{SpaceType: model.SpaceKitchen, Fraction: 0.15, Perimeter: true},
				{SpaceType: model.SpaceStorage, Fraction: 0.15},
			},
		},
		model.ResidentialMulti: {
			BuildingType:     model.ResidentialMulti,
			HVACType:         model.HVACPTAC,
			LightingWm2:      6.0,
			EquipmentWm2:     5.0,
			OccupancyPplM2:   0.035,
			InfiltrationACH:  0.5,
			WWR:              0.3,
			TargetCellAreaM2: 70,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceLivingRoom, Fraction: 0.75, Perimeter: true},
				{SpaceType: model.SpaceKitchen, Fraction: 0.10, Perimeter: true},
				{SpaceType: model.SpaceLobby, Fraction: 0.15},
			},
		},
		model.Warehouse: {
			BuildingType:     model.Warehouse,
			HVACType:         model.HVACRTU,
			LightingWm2:      4.0,
			EquipmentWm2:     2.0,
			OccupancyPplM2:   0.01,
			InfiltrationACH:  0.4,
			WWR:              0.1,
			TargetCellAreaM2: 400,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceStorage, Fraction: 0.90},
				{SpaceType: model.SpaceLobby, Fraction: 0.10, Perimeter: true},
			},
		},
		model.Hotel: {
			BuildingType:     model.Hotel,
			HVACType:         model.HVACPTAC,
			LightingWm2:      8.0,
			EquipmentWm2:     6.0,
			OccupancyPplM2:   0.04,
			InfiltrationACH:  0.45,
			WWR:              0.35,
			TargetCellAreaM2: 55,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceLivingRoom, Fraction: 0.70, Perimeter: true},
				{SpaceType: model.SpaceLobby, Fraction: 0.20, Perimeter: true},
				{SpaceType: model.SpaceStorage, Fraction: 0.10},
			},
		},
		model.Restaurant: {
			BuildingType:     model.Restaurant,
			HVACType:         model.HVACRTU,
			LightingWm2:      12.0,
			EquipmentWm2:     20.0,
			OccupancyPplM2:   0.25,
			InfiltrationACH:  0.6,
			WWR:              0.3,
			TargetCellAreaM2: 100,
			SpaceMix: []SpaceFraction{
				{SpaceType: model.SpaceKitchen, Fraction: 0.35},
				{SpaceType: model.SpaceLobby, Fraction: 0.55, Perimeter: true},
				{SpaceType: model.SpaceStorage, Fraction: 0.10},
			},
		},
	}
}
