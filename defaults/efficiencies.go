package defaults

import "idfgen/model"

// baseEfficiencies returns the unadjusted HVAC efficiency figures for
// a system family.
func baseEfficiencies(hvac model.HVACType) HVACEfficiencies {
	switch hvac {
	case model.HVACVAV:
		return HVACEfficiencies{FanPressureRisePa: 750, CoolingCOP: 3.5, HeatingEfficiency: 0.98, BoilerEfficiency: 0.85, ChillerCOP: 5.5}
	case model.HVACRTU:
		return HVACEfficiencies{FanPressureRisePa: 500, CoolingCOP: 3.2, HeatingEfficiency: 0.80, BoilerEfficiency: 0.80, ChillerCOP: 0}
	case model.HVACHeatPump:
		return HVACEfficiencies{FanPressureRisePa: 350, CoolingCOP: 3.8, HeatingEfficiency: 3.0, BoilerEfficiency: 0, ChillerCOP: 0}
	case model.HVACPTAC:
		return HVACEfficiencies{FanPressureRisePa: 250, CoolingCOP: 3.0, HeatingEfficiency: 0.98, BoilerEfficiency: 0, ChillerCOP: 0}
	case model.HVACChilledWater:
		return HVACEfficiencies{FanPressureRisePa: 900, CoolingCOP: 0, HeatingEfficiency: 0.90, BoilerEfficiency: 0.88, ChillerCOP: 6.0}
	default: // IdealLoads
		return HVACEfficiencies{FanPressureRisePa: 0, CoolingCOP: 0, HeatingEfficiency: 0, BoilerEfficiency: 0, ChillerCOP: 0}
	}
}
