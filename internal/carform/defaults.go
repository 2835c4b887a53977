package carform

import "github.com/carbazaar/admin-gateway/internal/models"

// defaultFeatures is the feature template a new listing starts from. The
// admin form only exposes a subset of the feature switches; everything else
// keeps these values.
func defaultFeatures() models.CarFeatures {
	return models.CarFeatures{
		Safety: models.SafetyFeatures{
			ABS:                     true,
			Airbags:                 "dual",
			AirbagCount:             2,
			EngineImmobilizer:       true,
			CentralLocking:          true,
			HeadlightHeightAdjuster: true,
			SeatBeltWarning:         true,
			EBD:                     true,
			PowerDoorLocks:          true,
			ChildSafetyLock:         true,
			LowFuelLevelWarning:     true,
			DoorAjarWarning:         true,
			SpeedAlert:              true,
			SteeringAirbag:          true,
			CoPassengerAirbag:       true,
			SafetyRating:            4,
			SafetyRatingType:        "Global NCAP",
			RearCamera:              true,
			ParkingSensors:          "rear",
			Custom:                  []string{},
		},
		Comfort: models.ComfortFeatures{
			ClimateControl:             true,
			AutomaticClimateControl:    true,
			RearAC:                     true,
			SecondRowACVent:            true,
			PowerSteering:              true,
			AirConditioner:             true,
			Outlets12V:                 true,
			PowerWindows:               "all",
			KeylessEntry:               true,
			DriverHeightAdjustableSeat: true,
			SteeringMountedControls:    true,
			Armrest:                    true,
			FoldingRearSeat:            true,
			RearSeatCentreArmRest:      true,
			SeatAdjustment:             true,
			GloveCompartment:           true,
			AdjustableORVM:             true,
			CupHolders:                 true,
			GearIndicator:              true,
			RearReadingLamp:            true,
			TailgateAjarWarning:        true,
			DigitalClock:               true,
			ElectricallyAdjustableORVM: true,
			OutsideTemperatureDisplay:  true,
			RemoteFuelLidOpener:        true,
			Sunroof:                    "none",
			Custom:                     []string{},
		},
		Entertainment: models.EntertainmentFeatures{
			TouchscreenInfotainmentSystem:      true,
			Touchscreen:                        true,
			Bluetooth:                          true,
			BluetoothCompatibilityConnectivity: true,
			USBCompatibilityConnectivity:       true,
			AMFMRadio:                          true,
			IntegratedInDashMusicSystem:        true,
			AndroidAuto:                        true,
			AppleCarplay:                       true,
			AuxCompatibilityConnectivity:       true,
			NumberOfSpeakers:                   4,
			Speakers:                           4,
			Custom:                             []string{},
		},
		Interior: models.InteriorFeatures{
			RearPassengerSeatType:    "split_folding",
			FrontSeatPockets:         true,
			DoorPockets:              true,
			SeatUpholsteryType:       "leatherette",
			DigitalTripmeter:         true,
			InteriorColours:          []string{"Black"},
			Upholstery:               "leatherette",
			Headrests:                true,
			InteriorDoorHandles:      true,
			DigitalTachometer:        true,
			DigitalOdometer:          true,
			DigitalInstrumentCluster: true,
			AdjustableHeadrests:      true,
			Custom:                   []string{},
		},
		Exterior: models.ExteriorFeatures{
			FogLamps:                    true,
			RearDefogger:                true,
			OutsideRearViewMirrorsORVMs: true,
			RearPowerWindow:             true,
			TurnIndicatorsOnORVM:        true,
			IntegratedAntenna:           true,
			Custom:                      []string{},
		},
	}
}

// Placeholder media used when the admin uploads files instead of supplying
// direct URLs; the real URLs are written by the backend once the follow-up
// media upload lands.
const (
	placeholderImageURL  = "https://dummyimage.com/1200x800/cccccc/111111.jpg&text=media+upload+pending"
	placeholderReportURL = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"
)
