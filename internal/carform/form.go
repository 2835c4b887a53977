package carform

// Form is the flat admin create/edit form for a car listing. Numeric fields
// arrive as free text and are coerced during payload building; checkbox fields
// arrive as booleans; list fields arrive as comma-separated text.
type Form struct {
	Status           string `json:"status" validate:"required"`
	Visibility       string `json:"visibility" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Brand            string `json:"brand" validate:"required"`
	Model            string `json:"model" validate:"required"`
	Variant          string `json:"variant"`
	FuelType         string `json:"fuel_type" validate:"required"`
	Transmission     string `json:"transmission" validate:"required"`
	BodyType         string `json:"body_type"`
	MakeYear         string `json:"make_year"`
	RegistrationYear string `json:"registration_year"`
	Ownership        string `json:"ownership"`
	RTOCode          string `json:"rto_code"`
	State            string `json:"state"`
	City             string `json:"city"`
	Area             string `json:"area"`
	KmsDriven        string `json:"kms_driven"`

	InsuranceValidTill string `json:"insurance_valid_till"`
	InsuranceType      string `json:"insurance_type"`
	OverallScore       string `json:"overall_score"`
	ReasonsToBuy       string `json:"reasons_to_buy"`
	Highlights         string `json:"highlights"`
	DeliveryAvailable  bool   `json:"delivery_available"`
	TestDriveAvailable bool   `json:"test_drive_available"`
	PriceAmount        string `json:"price_amount"`
	PriceCurrency      string `json:"price_currency"`

	GroundClearanceMM   string `json:"ground_clearance_mm"`
	BootSpaceLitres     string `json:"boot_space_litres"`
	SeatingRows         string `json:"seating_rows"`
	SeatingCapacity     string `json:"seating_capacity"`
	WheelbaseMM         string `json:"wheelbase_mm"`
	LengthMM            string `json:"length_mm"`
	WidthMM             string `json:"width_mm"`
	HeightMM            string `json:"height_mm"`
	KerbWeightKgs       string `json:"kerb_weight_kgs"`
	MaximumTreadDepthMM string `json:"maximum_tread_depth_mm"`
	NumberOfDoors       string `json:"number_of_doors"`
	AlloyWheels         bool   `json:"alloy_wheels"`
	WheelCover          bool   `json:"wheel_cover"`

	Drivetrain                string `json:"drivetrain"`
	Gearbox                   string `json:"gearbox"`
	NumberOfGears             string `json:"number_of_gears"`
	AutomaticTransmissionType string `json:"automatic_transmission_type"`
	DisplacementCC            string `json:"displacement_cc"`
	NumberOfCylinders         string `json:"number_of_cylinders"`
	ValvesPerCylinder         string `json:"valves_per_cylinder"`
	Turbocharger              bool   `json:"turbocharger"`
	MildHybrid                bool   `json:"mild_hybrid"`

	MileageARAIKmpl string `json:"mileage_arai_kmpl"`
	MaxPower        string `json:"max_power"`
	MaxTorque       string `json:"max_torque"`

	SuspensionFrontType string `json:"suspension_front_type"`
	SuspensionFront     string `json:"suspension_front"`
	SuspensionRearType  string `json:"suspension_rear_type"`
	SuspensionRear      string `json:"suspension_rear"`
	SteeringType        string `json:"steering_type"`
	SteeringAdjustment  string `json:"steering_adjustment"`
	FrontBrakeType      string `json:"front_brake_type"`
	RearBrakeType       string `json:"rear_brake_type"`
	Brakes              string `json:"brakes"`

	BookingEnabled  bool   `json:"booking_enabled"`
	CTAText         string `json:"cta_text"`
	RefundPolicy    string `json:"refund_policy"`
	RefundCondition string `json:"refund_condition"`

	TyreBrand     string `json:"tyre_brand"`
	TyreCondition string `json:"tyre_condition"`
	FrontTyreSize string `json:"front_tyre_size"`
	RearTyreSize  string `json:"rear_tyre_size"`
	SpareTyreSize string `json:"spare_tyre_size"`
	FrontTreadMM  string `json:"front_tread_mm"`
	RearTreadMM   string `json:"rear_tread_mm"`
	SpareTreadMM  string `json:"spare_tread_mm"`

	PrimaryImageURL      string `json:"primary_image_url"`
	MediaViewType        string `json:"media_view_type"`
	MediaGalleryCategory string `json:"media_gallery_category"`
	MediaKind            string `json:"media_kind"`
	MediaSortOrder       string `json:"media_sort_order"`
	InspectionReportURL  string `json:"inspection_report_url"`
	InspectionReportType string `json:"inspection_report_type"`

	FeaturesABS              bool   `json:"features_abs"`
	FeaturesAirbags          string `json:"features_airbags"`
	FeaturesAirbagCount      string `json:"features_airbag_count"`
	FeaturesSafetyRating     string `json:"features_safety_rating"`
	FeaturesSafetyRatingType string `json:"features_safety_rating_type"`
	FeaturesRearCamera       bool   `json:"features_rear_camera"`
	FeaturesParkingSensors   string `json:"features_parking_sensors"`
	FeaturesTractionControl  bool   `json:"features_traction_control"`
	FeaturesHillAssist       bool   `json:"features_hill_assist"`

	FeaturesClimateControl bool   `json:"features_climate_control"`
	FeaturesRearAC         bool   `json:"features_rear_ac"`
	FeaturesPowerSteering  bool   `json:"features_power_steering"`
	FeaturesPowerWindows   string `json:"features_power_windows"`
	FeaturesKeylessEntry   bool   `json:"features_keyless_entry"`
	FeaturesCruiseControl  bool   `json:"features_cruise_control"`
	FeaturesSunroof        string `json:"features_sunroof"`

	FeaturesTouchscreen  bool   `json:"features_touchscreen"`
	FeaturesBluetooth    bool   `json:"features_bluetooth"`
	FeaturesAndroidAuto  bool   `json:"features_android_auto"`
	FeaturesAppleCarplay bool   `json:"features_apple_carplay"`
	FeaturesSpeakers     string `json:"features_speakers"`

	FeaturesRearPassengerSeatType string `json:"features_rear_passenger_seat_type"`
	FeaturesSeatUpholsteryType    string `json:"features_seat_upholstery_type"`
	FeaturesUpholstery            string `json:"features_upholstery"`
	FeaturesInteriorColours       string `json:"features_interior_colours"`
	FeaturesAdjustableHeadrests   bool   `json:"features_adjustable_headrests"`
	FeaturesAmbientLighting       bool   `json:"features_ambient_lighting"`

	FeaturesFogLamps     bool `json:"features_fog_lamps"`
	FeaturesLEDHeadlamps bool `json:"features_led_headlamps"`
	FeaturesRoofRails    bool `json:"features_roof_rails"`
	FeaturesRearWiper    bool `json:"features_rear_wiper"`
	FeaturesRearDefogger bool `json:"features_rear_defogger"`
}
