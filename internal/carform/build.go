package carform

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/carbazaar/admin-gateway/internal/models"
)

// toNumber coerces free text into a number. Empty input is zero; text that
// does not parse yields the fallback, never the literal text.
func toNumber(value string, fallback float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return fallback
	}
	return parsed
}

// SplitCSV maps comma-separated text to an ordered list, trimming each entry
// and dropping empties.
func SplitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func buildFeatures(f Form) models.CarFeatures {
	features := defaultFeatures()

	features.Safety.ABS = f.FeaturesABS
	features.Safety.Airbags = f.FeaturesAirbags
	features.Safety.AirbagCount = toNumber(f.FeaturesAirbagCount, 2)
	features.Safety.SafetyRating = toNumber(f.FeaturesSafetyRating, 4)
	features.Safety.SafetyRatingType = f.FeaturesSafetyRatingType
	features.Safety.RearCamera = f.FeaturesRearCamera
	features.Safety.ParkingSensors = f.FeaturesParkingSensors
	features.Safety.TractionControl = f.FeaturesTractionControl
	features.Safety.HillAssist = f.FeaturesHillAssist

	features.Comfort.ClimateControl = f.FeaturesClimateControl
	features.Comfort.RearAC = f.FeaturesRearAC
	features.Comfort.PowerSteering = f.FeaturesPowerSteering
	features.Comfort.PowerWindows = f.FeaturesPowerWindows
	features.Comfort.KeylessEntry = f.FeaturesKeylessEntry
	features.Comfort.CruiseControl = f.FeaturesCruiseControl
	features.Comfort.Sunroof = f.FeaturesSunroof

	features.Entertainment.Touchscreen = f.FeaturesTouchscreen
	features.Entertainment.Bluetooth = f.FeaturesBluetooth
	features.Entertainment.AndroidAuto = f.FeaturesAndroidAuto
	features.Entertainment.AppleCarplay = f.FeaturesAppleCarplay
	features.Entertainment.Speakers = toNumber(f.FeaturesSpeakers, 4)
	features.Entertainment.NumberOfSpeakers = toNumber(f.FeaturesSpeakers, 4)

	features.Interior.RearPassengerSeatType = f.FeaturesRearPassengerSeatType
	features.Interior.SeatUpholsteryType = f.FeaturesSeatUpholsteryType
	features.Interior.Upholstery = f.FeaturesUpholstery
	features.Interior.InteriorColours = SplitCSV(f.FeaturesInteriorColours)
	features.Interior.AdjustableHeadrests = f.FeaturesAdjustableHeadrests
	features.Interior.AmbientLighting = f.FeaturesAmbientLighting

	features.Exterior.FogLamps = f.FeaturesFogLamps
	features.Exterior.LEDHeadlamps = f.FeaturesLEDHeadlamps
	features.Exterior.RoofRails = f.FeaturesRoofRails
	features.Exterior.RearWiper = f.FeaturesRearWiper
	features.Exterior.RearDefogger = f.FeaturesRearDefogger

	return features
}

// Build assembles the nested wire payload from the flat admin form.
func Build(f Form) models.CarPayload {
	return models.CarPayload{
		Status:             f.Status,
		Visibility:         f.Visibility,
		Title:              f.Title,
		Brand:              f.Brand,
		Model:              f.Model,
		Variant:            f.Variant,
		FuelType:           f.FuelType,
		Transmission:       f.Transmission,
		BodyType:           f.BodyType,
		MakeYear:           toNumber(f.MakeYear, 0),
		RegistrationYear:   toNumber(f.RegistrationYear, 0),
		Ownership:          f.Ownership,
		RTOCode:            f.RTOCode,
		State:              f.State,
		KmsDriven:          toNumber(f.KmsDriven, 0),
		InsuranceValidTill: f.InsuranceValidTill,
		InsuranceType:      f.InsuranceType,
		City:               f.City,
		Area:               f.Area,
		DeliveryAvailable:  f.DeliveryAvailable,
		TestDriveAvailable: f.TestDriveAvailable,
		ReasonsToBuy:       SplitCSV(f.ReasonsToBuy),
		Highlights:         SplitCSV(f.Highlights),
		OverallScore:       toNumber(f.OverallScore, 0),
		DimensionsCapacity: models.DimensionsCapacity{
			GroundClearanceMM:   toNumber(f.GroundClearanceMM, 0),
			BootSpaceLitres:     toNumber(f.BootSpaceLitres, 0),
			SeatingRows:         toNumber(f.SeatingRows, 0),
			SeatingCapacity:     toNumber(f.SeatingCapacity, 0),
			WheelbaseMM:         toNumber(f.WheelbaseMM, 0),
			LengthMM:            toNumber(f.LengthMM, 0),
			WidthMM:             toNumber(f.WidthMM, 0),
			HeightMM:            toNumber(f.HeightMM, 0),
			KerbWeightKgs:       toNumber(f.KerbWeightKgs, 0),
			MaximumTreadDepthMM: toNumber(f.MaximumTreadDepthMM, 0),
			NumberOfDoors:       toNumber(f.NumberOfDoors, 0),
			FrontTyreSize:       f.FrontTyreSize,
			RearTyreSize:        f.RearTyreSize,
			AlloyWheels:         f.AlloyWheels,
			WheelCover:          f.WheelCover,
			Custom:              []string{},
		},
		EngineTransmission: models.EngineTransmission{
			Drivetrain:                f.Drivetrain,
			Gearbox:                   f.Gearbox,
			NumberOfGears:             toNumber(f.NumberOfGears, 0),
			AutomaticTransmissionType: f.AutomaticTransmissionType,
			DisplacementCC:            toNumber(f.DisplacementCC, 0),
			NumberOfCylinders:         toNumber(f.NumberOfCylinders, 0),
			ValvesPerCylinder:         toNumber(f.ValvesPerCylinder, 0),
			Turbocharger:              f.Turbocharger,
			MildHybrid:                f.MildHybrid,
			Custom:                    []string{},
		},
		FuelPerformance: models.FuelPerformance{
			MileageARAIKmpl: toNumber(f.MileageARAIKmpl, 0),
			MaxPower:        f.MaxPower,
			MaxTorque:       f.MaxTorque,
		},
		SuspensionSteeringBrakes: models.SuspensionSteeringBrakes{
			SuspensionFrontType: f.SuspensionFrontType,
			SuspensionFront:     f.SuspensionFront,
			SuspensionRearType:  f.SuspensionRearType,
			SuspensionRear:      f.SuspensionRear,
			SteeringType:        f.SteeringType,
			SteeringAdjustment:  f.SteeringAdjustment,
			FrontBrakeType:      f.FrontBrakeType,
			RearBrakeType:       f.RearBrakeType,
			Brakes:              f.Brakes,
		},
		BookingPolicy: models.BookingPolicy{
			BookingEnabled:  f.BookingEnabled,
			CTAText:         f.CTAText,
			RefundPolicy:    f.RefundPolicy,
			RefundCondition: f.RefundCondition,
		},
		Features: buildFeatures(f),
		Tyres: models.Tyres{
			Front: models.Tyre{
				Brand:     f.TyreBrand,
				Size:      f.FrontTyreSize,
				Condition: f.TyreCondition,
				TreadMM:   toNumber(f.FrontTreadMM, 0),
			},
			Rear: models.Tyre{
				Brand:     f.TyreBrand,
				Size:      f.RearTyreSize,
				Condition: f.TyreCondition,
				TreadMM:   toNumber(f.RearTreadMM, 0),
			},
			Spare: models.Tyre{
				Brand:     f.TyreBrand,
				Size:      f.SpareTyreSize,
				Condition: f.TyreCondition,
				TreadMM:   toNumber(f.SpareTreadMM, 0),
			},
		},
		Media: models.CarMedia{
			Images: []models.MediaImage{
				{
					URL:             f.PrimaryImageURL,
					ViewType:        orDefault(f.MediaViewType, "gallery"),
					GalleryCategory: orDefault(f.MediaGalleryCategory, "other"),
					Kind:            orDefault(f.MediaKind, orDefault(f.MediaGalleryCategory, "other")),
					SortOrder:       toNumber(f.MediaSortOrder, 1),
				},
			},
			InspectionReport: models.InspectionReport{
				URL:  f.InspectionReportURL,
				Type: orDefault(f.InspectionReportType, "pdf"),
			},
		},
		Price: models.Price{
			Amount:   toNumber(f.PriceAmount, 0),
			Currency: f.PriceCurrency,
		},
		Custom: []string{},
	}
}

// WithPlaceholderMedia swaps the payload's media section for placeholders.
// Used when the admin uploads files: the primary create must still carry a
// syntactically valid media block, and the follow-up multipart upload
// overwrites it server-side.
func WithPlaceholderMedia(p models.CarPayload, f Form) models.CarPayload {
	p.Media = models.CarMedia{
		Images: []models.MediaImage{
			{
				URL:             orDefault(f.PrimaryImageURL, placeholderImageURL),
				ViewType:        "gallery",
				GalleryCategory: "other",
				Kind:            "other",
				SortOrder:       1,
			},
		},
		InspectionReport: models.InspectionReport{
			URL:  orDefault(f.InspectionReportURL, placeholderReportURL),
			Type: orDefault(f.InspectionReportType, "pdf"),
		},
	}
	return p
}

func formatNumber(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func toInputDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return ""
}

func joinCSV(values []string) string {
	return strings.Join(values, ", ")
}

// FormFromCar maps a full listing back onto the flat edit form: numbers to
// strings, lists to comma-separated text, dates to YYYY-MM-DD.
func FormFromCar(car models.Car) Form {
	f := Form{
		Status:             car.Status,
		Visibility:         car.Visibility,
		Title:              car.Title,
		Brand:              car.Brand,
		Model:              car.Model,
		Variant:            car.Variant,
		FuelType:           car.FuelType,
		Transmission:       car.Transmission,
		BodyType:           car.BodyType,
		MakeYear:           formatNumber(car.MakeYear),
		RegistrationYear:   formatNumber(car.RegistrationYear),
		Ownership:          car.Ownership,
		RTOCode:            car.RTOCode,
		State:              car.State,
		City:               car.City,
		Area:               car.Area,
		KmsDriven:          formatNumber(car.KmsDriven),
		InsuranceValidTill: toInputDate(car.InsuranceValidTill),
		InsuranceType:      car.InsuranceType,
		OverallScore:       formatNumber(car.OverallScore),
		ReasonsToBuy:       joinCSV(car.ReasonsToBuy),
		Highlights:         joinCSV(car.Highlights),
		DeliveryAvailable:  car.DeliveryAvailable,
		TestDriveAvailable: car.TestDriveAvailable,
		PriceAmount:        formatNumber(car.Price.Amount),
		PriceCurrency:      car.Price.Currency,

		GroundClearanceMM:   formatNumber(car.DimensionsCapacity.GroundClearanceMM),
		BootSpaceLitres:     formatNumber(car.DimensionsCapacity.BootSpaceLitres),
		SeatingRows:         formatNumber(car.DimensionsCapacity.SeatingRows),
		SeatingCapacity:     formatNumber(car.DimensionsCapacity.SeatingCapacity),
		WheelbaseMM:         formatNumber(car.DimensionsCapacity.WheelbaseMM),
		LengthMM:            formatNumber(car.DimensionsCapacity.LengthMM),
		WidthMM:             formatNumber(car.DimensionsCapacity.WidthMM),
		HeightMM:            formatNumber(car.DimensionsCapacity.HeightMM),
		KerbWeightKgs:       formatNumber(car.DimensionsCapacity.KerbWeightKgs),
		MaximumTreadDepthMM: formatNumber(car.DimensionsCapacity.MaximumTreadDepthMM),
		NumberOfDoors:       formatNumber(car.DimensionsCapacity.NumberOfDoors),
		AlloyWheels:         car.DimensionsCapacity.AlloyWheels,
		WheelCover:          car.DimensionsCapacity.WheelCover,

		Drivetrain:                car.EngineTransmission.Drivetrain,
		Gearbox:                   car.EngineTransmission.Gearbox,
		NumberOfGears:             formatNumber(car.EngineTransmission.NumberOfGears),
		AutomaticTransmissionType: car.EngineTransmission.AutomaticTransmissionType,
		DisplacementCC:            formatNumber(car.EngineTransmission.DisplacementCC),
		NumberOfCylinders:         formatNumber(car.EngineTransmission.NumberOfCylinders),
		ValvesPerCylinder:         formatNumber(car.EngineTransmission.ValvesPerCylinder),
		Turbocharger:              car.EngineTransmission.Turbocharger,
		MildHybrid:                car.EngineTransmission.MildHybrid,

		MileageARAIKmpl: formatNumber(car.FuelPerformance.MileageARAIKmpl),
		MaxPower:        car.FuelPerformance.MaxPower,
		MaxTorque:       car.FuelPerformance.MaxTorque,

		SuspensionFrontType: car.SuspensionSteeringBrakes.SuspensionFrontType,
		SuspensionFront:     car.SuspensionSteeringBrakes.SuspensionFront,
		SuspensionRearType:  car.SuspensionSteeringBrakes.SuspensionRearType,
		SuspensionRear:      car.SuspensionSteeringBrakes.SuspensionRear,
		SteeringType:        car.SuspensionSteeringBrakes.SteeringType,
		SteeringAdjustment:  car.SuspensionSteeringBrakes.SteeringAdjustment,
		FrontBrakeType:      car.SuspensionSteeringBrakes.FrontBrakeType,
		RearBrakeType:       car.SuspensionSteeringBrakes.RearBrakeType,
		Brakes:              car.SuspensionSteeringBrakes.Brakes,

		BookingEnabled:  car.BookingPolicy.BookingEnabled,
		CTAText:         car.BookingPolicy.CTAText,
		RefundPolicy:    car.BookingPolicy.RefundPolicy,
		RefundCondition: car.BookingPolicy.RefundCondition,

		TyreBrand:     car.Tyres.Front.Brand,
		TyreCondition: car.Tyres.Front.Condition,
		FrontTyreSize: orDefault(car.Tyres.Front.Size, car.DimensionsCapacity.FrontTyreSize),
		RearTyreSize:  orDefault(car.Tyres.Rear.Size, car.DimensionsCapacity.RearTyreSize),
		SpareTyreSize: car.Tyres.Spare.Size,
		FrontTreadMM:  formatNumber(car.Tyres.Front.TreadMM),
		RearTreadMM:   formatNumber(car.Tyres.Rear.TreadMM),
		SpareTreadMM:  formatNumber(car.Tyres.Spare.TreadMM),

		InspectionReportURL:  car.Media.InspectionReport.URL,
		InspectionReportType: car.Media.InspectionReport.Type,

		FeaturesABS:              car.Features.Safety.ABS,
		FeaturesAirbags:          car.Features.Safety.Airbags,
		FeaturesAirbagCount:      formatNumber(car.Features.Safety.AirbagCount),
		FeaturesSafetyRating:     formatNumber(car.Features.Safety.SafetyRating),
		FeaturesSafetyRatingType: car.Features.Safety.SafetyRatingType,
		FeaturesRearCamera:       car.Features.Safety.RearCamera,
		FeaturesParkingSensors:   car.Features.Safety.ParkingSensors,
		FeaturesTractionControl:  car.Features.Safety.TractionControl,
		FeaturesHillAssist:       car.Features.Safety.HillAssist,

		FeaturesClimateControl: car.Features.Comfort.ClimateControl,
		FeaturesRearAC:         car.Features.Comfort.RearAC,
		FeaturesPowerSteering:  car.Features.Comfort.PowerSteering,
		FeaturesPowerWindows:   car.Features.Comfort.PowerWindows,
		FeaturesKeylessEntry:   car.Features.Comfort.KeylessEntry,
		FeaturesCruiseControl:  car.Features.Comfort.CruiseControl,
		FeaturesSunroof:        car.Features.Comfort.Sunroof,

		FeaturesTouchscreen:  car.Features.Entertainment.Touchscreen,
		FeaturesBluetooth:    car.Features.Entertainment.Bluetooth,
		FeaturesAndroidAuto:  car.Features.Entertainment.AndroidAuto,
		FeaturesAppleCarplay: car.Features.Entertainment.AppleCarplay,
		FeaturesSpeakers:     formatNumber(car.Features.Entertainment.Speakers),

		FeaturesRearPassengerSeatType: car.Features.Interior.RearPassengerSeatType,
		FeaturesSeatUpholsteryType:    car.Features.Interior.SeatUpholsteryType,
		FeaturesUpholstery:            car.Features.Interior.Upholstery,
		FeaturesInteriorColours:       joinCSV(car.Features.Interior.InteriorColours),
		FeaturesAdjustableHeadrests:   car.Features.Interior.AdjustableHeadrests,
		FeaturesAmbientLighting:       car.Features.Interior.AmbientLighting,

		FeaturesFogLamps:     car.Features.Exterior.FogLamps,
		FeaturesLEDHeadlamps: car.Features.Exterior.LEDHeadlamps,
		FeaturesRoofRails:    car.Features.Exterior.RoofRails,
		FeaturesRearWiper:    car.Features.Exterior.RearWiper,
		FeaturesRearDefogger: car.Features.Exterior.RearDefogger,
	}

	if len(car.Media.Images) > 0 {
		first := car.Media.Images[0]
		f.PrimaryImageURL = first.URL
		f.MediaViewType = first.ViewType
		f.MediaGalleryCategory = first.GalleryCategory
		f.MediaKind = first.Kind
		f.MediaSortOrder = formatNumber(first.SortOrder)
	}

	return f
}
