package models

// Allowed values for the enumerated car fields. The backend rejects anything
// outside these sets, so the gateway validates before submitting.
var (
	CarStatuses            = []string{"draft", "active", "sold", "archived"}
	CarVisibilities        = []string{"public", "private", "hidden"}
	FuelTypes              = []string{"petrol", "diesel", "electric", "hybrid", "cng", "lpg"}
	Transmissions          = []string{"manual", "automatic", "amt", "cvt", "dct"}
	BodyTypes              = []string{"hatchback", "sedan", "suv", "muv", "coupe", "convertible", "pickup", "van"}
	Ownerships             = []string{"first", "second", "third", "fourth_plus"}
	InsuranceTypes         = []string{"comprehensive", "third_party", "zero_dep", "none"}
	Drivetrains            = []string{"fwd", "rwd", "awd", "4wd"}
	TyreConditions         = []string{"new", "good", "fair", "poor"}
	AirbagOptions          = []string{"none", "driver", "dual", "curtain", "multiple"}
	ParkingSensorOptions   = []string{"none", "rear", "front_rear"}
	PowerWindowOptions     = []string{"none", "front", "all"}
	SunroofOptions         = []string{"none", "standard", "panoramic"}
	SeatTypes              = []string{"fixed", "folding", "split_folding", "captain"}
	Upholsteries           = []string{"fabric", "leather", "leatherette"}
	SafetyRatingTypes      = []string{"Global NCAP", "Bharat NCAP", "ASEAN NCAP", "Euro NCAP", "NHTSA", "IIHS"}
	MediaViewTypes         = []string{"exterior_360", "interior_360", "gallery"}
	MediaGalleryCategories = []string{"exterior", "interior", "engine", "tyres", "top_features", "extra", "dents", "other"}
	MediaReportTypes       = []string{"pdf", "image"}
)

type DimensionsCapacity struct {
	GroundClearanceMM   float64  `json:"ground_clearance_mm"`
	BootSpaceLitres     float64  `json:"boot_space_litres"`
	SeatingRows         float64  `json:"seating_rows"`
	SeatingCapacity     float64  `json:"seating_capacity"`
	WheelbaseMM         float64  `json:"wheelbase_mm"`
	LengthMM            float64  `json:"length_mm"`
	WidthMM             float64  `json:"width_mm"`
	HeightMM            float64  `json:"height_mm"`
	KerbWeightKgs       float64  `json:"kerb_weight_kgs"`
	MaximumTreadDepthMM float64  `json:"maximum_tread_depth_mm"`
	NumberOfDoors       float64  `json:"number_of_doors"`
	FrontTyreSize       string   `json:"front_tyre_size"`
	RearTyreSize        string   `json:"rear_tyre_size"`
	AlloyWheels         bool     `json:"alloy_wheels"`
	WheelCover          bool     `json:"wheel_cover"`
	Custom              []string `json:"custom"`
}

type EngineTransmission struct {
	Drivetrain                string   `json:"drivetrain"`
	Gearbox                   string   `json:"gearbox"`
	NumberOfGears             float64  `json:"number_of_gears"`
	AutomaticTransmissionType string   `json:"automatic_transmission_type"`
	DisplacementCC            float64  `json:"displacement_cc"`
	NumberOfCylinders         float64  `json:"number_of_cylinders"`
	ValvesPerCylinder         float64  `json:"valves_per_cylinder"`
	Turbocharger              bool     `json:"turbocharger"`
	MildHybrid                bool     `json:"mild_hybrid"`
	Custom                    []string `json:"custom"`
}

type FuelPerformance struct {
	MileageARAIKmpl float64 `json:"mileage_arai_kmpl"`
	MaxPower        string  `json:"max_power"`
	MaxTorque       string  `json:"max_torque"`
}

type SuspensionSteeringBrakes struct {
	SuspensionFrontType string `json:"suspension_front_type"`
	SuspensionFront     string `json:"suspension_front"`
	SuspensionRearType  string `json:"suspension_rear_type"`
	SuspensionRear      string `json:"suspension_rear"`
	SteeringType        string `json:"steering_type"`
	SteeringAdjustment  string `json:"steering_adjustment"`
	FrontBrakeType      string `json:"front_brake_type"`
	RearBrakeType       string `json:"rear_brake_type"`
	Brakes              string `json:"brakes"`
}

type BookingPolicy struct {
	BookingEnabled  bool   `json:"booking_enabled"`
	CTAText         string `json:"cta_text"`
	RefundPolicy    string `json:"refund_policy"`
	RefundCondition string `json:"refund_condition"`
}

type Tyre struct {
	Brand     string  `json:"brand"`
	Size      string  `json:"size"`
	Condition string  `json:"condition"`
	TreadMM   float64 `json:"tread_mm"`
}

type Tyres struct {
	Front Tyre `json:"front"`
	Rear  Tyre `json:"rear"`
	Spare Tyre `json:"spare"`
}

// SafetyFeatures mirrors the backend's full safety group. The gateway only
// exposes a subset of these on the admin form; the rest are filled from the
// default template.
type SafetyFeatures struct {
	ABS                            bool     `json:"abs"`
	Airbags                        string   `json:"airbags"`
	AirbagCount                    float64  `json:"airbag_count"`
	EngineImmobilizer              bool     `json:"engine_immobilizer"`
	AntiTheftDevice                bool     `json:"anti_theft_device"`
	CentralLocking                 bool     `json:"central_locking"`
	HeadlightHeightAdjuster        bool     `json:"headlight_height_adjuster"`
	SeatBeltWarning                bool     `json:"seat_belt_warning"`
	EBD                            bool     `json:"ebd"`
	SpeedSensingCentralDoorLocking bool     `json:"speed_sensing_central_door_locking"`
	PowerDoorLocks                 bool     `json:"power_door_locks"`
	ChildSafetyLock                bool     `json:"child_safety_lock"`
	LowFuelLevelWarning            bool     `json:"low_fuel_level_warning"`
	DoorAjarWarning                bool     `json:"door_ajar_warning"`
	SpeedAlert                     bool     `json:"speed_alert"`
	SteeringAirbag                 bool     `json:"steering_airbag"`
	CoPassengerAirbag              bool     `json:"co_passenger_airbag"`
	SafetyRating                   float64  `json:"safety_rating"`
	SafetyRatingType               string   `json:"safety_rating_type"`
	AutomaticParkingAssist         bool     `json:"automatic_parking_assist"`
	ESP                            bool     `json:"esp"`
	KneeAirbags                    bool     `json:"knee_airbags"`
	BrakeAssist                    bool     `json:"brake_assist"`
	ViewCamera360                  bool     `json:"view_camera_360"`
	RearCamera                     bool     `json:"rear_camera"`
	ActiveRollMitigation           bool     `json:"active_roll_mitigation"`
	AutomaticHeadLamps             bool     `json:"automatic_head_lamps"`
	CorneringHeadlights            bool     `json:"cornering_headlights"`
	FollowMeHomeHeadlamps          bool     `json:"follow_me_home_headlamps"`
	TPMS                           bool     `json:"tpms"`
	HillHoldControl                bool     `json:"hill_hold_control"`
	ParkingSensors                 string   `json:"parking_sensors"`
	ChildSeatAnchorPoints          bool     `json:"child_seat_anchor_points"`
	HeadlightIgnitionOffReminder   bool     `json:"headlight_ignition_off_reminder"`
	MiddleRearThreePointSeatbelt   bool     `json:"middle_rear_three_point_seatbelt"`
	SecondRowMiddleRearHeadrest    bool     `json:"second_row_middle_rear_headrest"`
	GeoFenceAlert                  bool     `json:"geo_fence_alert"`
	SideAirbags                    bool     `json:"side_airbags"`
	FrontTorsoAirbags              bool     `json:"front_torso_airbags"`
	RearTorsoAirbags               bool     `json:"rear_torso_airbags"`
	TractionControl                bool     `json:"traction_control"`
	HillAssist                     bool     `json:"hill_assist"`
	Custom                         []string `json:"custom"`
}

type ComfortFeatures struct {
	WirelessPhoneCharging           bool     `json:"wireless_phone_charging"`
	AirQualityControlFilter         bool     `json:"air_quality_control_filter"`
	ClimateControl                  bool     `json:"climate_control"`
	AutomaticClimateControl         bool     `json:"automatic_climate_control"`
	RearAC                          bool     `json:"rear_ac"`
	SecondRowACVent                 bool     `json:"second_row_ac_vent"`
	PowerSteering                   bool     `json:"power_steering"`
	AirConditioner                  bool     `json:"air_conditioner"`
	Outlets12V                      bool     `json:"outlets_12v"`
	PowerWindows                    string   `json:"power_windows"`
	KeylessStart                    bool     `json:"keyless_start"`
	KeylessEntry                    bool     `json:"keyless_entry"`
	CruiseControl                   bool     `json:"cruise_control"`
	DriverHeightAdjustableSeat      bool     `json:"driver_height_adjustable_seat"`
	SteeringMountedControls         bool     `json:"steering_mounted_controls"`
	Armrest                         bool     `json:"armrest"`
	FoldingRearSeat                 bool     `json:"folding_rear_seat"`
	RearSeatCentreArmRest           bool     `json:"rear_seat_centre_arm_rest"`
	SeatAdjustment                  bool     `json:"seat_adjustment"`
	GloveCompartment                bool     `json:"glove_compartment"`
	AdjustableORVM                  bool     `json:"adjustable_orvm"`
	SeatLumbarSupport               bool     `json:"seat_lumbar_support"`
	CupHolders                      bool     `json:"cup_holders"`
	TrunkCargoLights                bool     `json:"trunk_cargo_lights"`
	GearIndicator                   bool     `json:"gear_indicator"`
	RearReadingLamp                 bool     `json:"rear_reading_lamp"`
	TailgateAjarWarning             bool     `json:"tailgate_ajar_warning"`
	DigitalClock                    bool     `json:"digital_clock"`
	VoiceCommandControl             bool     `json:"voice_command_control"`
	ThirdRowCupHolders              bool     `json:"third_row_cup_holders"`
	DriverVentilatedSeat            bool     `json:"driver_ventilated_seat"`
	ElectricallyAdjustableORVM      bool     `json:"electrically_adjustable_orvm"`
	VentilatedSeats                 bool     `json:"ventilated_seats"`
	ElectricallyAdjustableDriverSeat bool    `json:"electrically_adjustable_driver_seat"`
	SecondRowVentilatedSeat         bool     `json:"second_row_ventilated_seat"`
	SteeringWheelGearshiftPaddles   bool     `json:"steering_wheel_gearshift_paddles"`
	OutsideTemperatureDisplay       bool     `json:"outside_temperature_display"`
	GloveBoxCooling                 bool     `json:"glove_box_cooling"`
	FindMyCarLocation               bool     `json:"find_my_car_location"`
	LaneChangeIndicator             bool     `json:"lane_change_indicator"`
	RearCurtain                     bool     `json:"rear_curtain"`
	RealTimeVehicleTracking         bool     `json:"real_time_vehicle_tracking"`
	RemoteFuelLidOpener             bool     `json:"remote_fuel_lid_opener"`
	WindowBlind                     bool     `json:"window_blind"`
	ActiveNoiseCancellation         bool     `json:"active_noise_cancellation"`
	LuggageHookAndNet               bool     `json:"luggage_hook_and_net"`
	AirSuspension                   bool     `json:"air_suspension"`
	Sunroof                         string   `json:"sunroof"`
	Custom                          []string `json:"custom"`
}

type EntertainmentFeatures struct {
	TouchscreenInfotainmentSystem     bool     `json:"touchscreen_infotainment_system"`
	Touchscreen                       bool     `json:"touchscreen"`
	GPSNavigationSystem               bool     `json:"gps_navigation_system"`
	Bluetooth                         bool     `json:"bluetooth"`
	BluetoothCompatibilityConnectivity bool    `json:"bluetooth_compatibility_connectivity"`
	USBCompatibilityConnectivity      bool     `json:"usb_compatibility_connectivity"`
	AMFMRadio                         bool     `json:"am_fm_radio"`
	IntegratedInDashMusicSystem       bool     `json:"integrated_in_dash_music_system"`
	AndroidAuto                       bool     `json:"android_auto"`
	AppleCarplay                      bool     `json:"apple_carplay"`
	AuxCompatibilityConnectivity      bool     `json:"aux_compatibility_connectivity"`
	DVDPlayer                         bool     `json:"dvd_player"`
	IpodCompatibility                 bool     `json:"ipod_compatibility"`
	InternalStorageHardDrive          bool     `json:"internal_storage_hard_drive"`
	NumberOfSpeakers                  float64  `json:"number_of_speakers"`
	Speakers                          float64  `json:"speakers"`
	Custom                            []string `json:"custom"`
}

type InteriorFeatures struct {
	RearPassengerSeatType              string   `json:"rear_passenger_seat_type"`
	FrontSeatPockets                   bool     `json:"front_seat_pockets"`
	DoorPockets                        bool     `json:"door_pockets"`
	SeatUpholsteryType                 string   `json:"seat_upholstery_type"`
	DigitalTripmeter                   bool     `json:"digital_tripmeter"`
	InteriorColours                    []string `json:"interior_colours"`
	Upholstery                         string   `json:"upholstery"`
	Headrests                          bool     `json:"headrests"`
	InteriorDoorHandles                bool     `json:"interior_door_handles"`
	DigitalCockpit                     bool     `json:"digital_cockpit"`
	LeatherWrappedGearKnobShiftSelector bool    `json:"leather_wrapped_gear_knob_shift_selector"`
	LeatherWrappedSteeringWheel        bool     `json:"leather_wrapped_steering_wheel"`
	DigitalTachometer                  bool     `json:"digital_tachometer"`
	DigitalOdometer                    bool     `json:"digital_odometer"`
	DigitalInstrumentCluster           bool     `json:"digital_instrument_cluster"`
	AdjustableHeadrests                bool     `json:"adjustable_headrests"`
	AmbientLighting                    bool     `json:"ambient_lighting"`
	Custom                             []string `json:"custom"`
}

type ExteriorFeatures struct {
	Sunroof                   bool     `json:"sunroof"`
	FogLamps                  bool     `json:"fog_lamps"`
	LEDHeadlamps              bool     `json:"led_headlamps"`
	RoofRails                 bool     `json:"roof_rails"`
	RearWiper                 bool     `json:"rear_wiper"`
	RearDefogger              bool     `json:"rear_defogger"`
	OutsideRearViewMirrorsORVMs bool   `json:"outside_rear_view_mirrors_orvms"`
	RearPowerWindow           bool     `json:"rear_power_window"`
	TurnIndicatorsOnORVM      bool     `json:"turn_indicators_on_orvm"`
	TailLampsLEDs             bool     `json:"tail_lamps_leds"`
	ChromeExhaust             bool     `json:"chrome_exhaust"`
	ChromeFrontGrille         bool     `json:"chrome_front_grille"`
	IntegratedAntenna         bool     `json:"integrated_antenna"`
	TintedWindowGlass         bool     `json:"tinted_window_glass"`
	RainSensingWipers         bool     `json:"rain_sensing_wipers"`
	RemovableConvertibleTop   bool     `json:"removable_convertible_top"`
	DualToneBodyColors        bool     `json:"dual_tone_body_colors"`
	RoofCarrier               bool     `json:"roof_carrier"`
	SideStepper               bool     `json:"side_stepper"`
	XenonHIDHeadlamps         bool     `json:"xenon_hid_headlamps"`
	RearSpoiler               bool     `json:"rear_spoiler"`
	ElectronicSpoiler         bool     `json:"electronic_spoiler"`
	Custom                    []string `json:"custom"`
}

type CarFeatures struct {
	Safety        SafetyFeatures        `json:"safety"`
	Comfort       ComfortFeatures       `json:"comfort"`
	Entertainment EntertainmentFeatures `json:"entertainment"`
	Interior      InteriorFeatures      `json:"interior"`
	Exterior      ExteriorFeatures      `json:"exterior"`
}

type MediaImage struct {
	URL             string  `json:"url"`
	ViewType        string  `json:"view_type"`
	GalleryCategory string  `json:"gallery_category"`
	Kind            string  `json:"kind"`
	SortOrder       float64 `json:"sort_order"`
}

type InspectionReport struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type CarMedia struct {
	Images           []MediaImage     `json:"images"`
	InspectionReport InspectionReport `json:"inspection_report"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CarPayload is the wire body for POST /cars and PATCH /cars/:id.
type CarPayload struct {
	Status             string                   `json:"status"`
	Visibility         string                   `json:"visibility"`
	Title              string                   `json:"title"`
	Brand              string                   `json:"brand"`
	Model              string                   `json:"model"`
	Variant            string                   `json:"variant"`
	FuelType           string                   `json:"fuel_type"`
	Transmission       string                   `json:"transmission"`
	BodyType           string                   `json:"body_type"`
	MakeYear           float64                  `json:"make_year"`
	RegistrationYear   float64                  `json:"registration_year"`
	Ownership          string                   `json:"ownership"`
	RTOCode            string                   `json:"rto_code"`
	State              string                   `json:"state"`
	KmsDriven          float64                  `json:"kms_driven"`
	InsuranceValidTill string                   `json:"insurance_valid_till"`
	InsuranceType      string                   `json:"insurance_type"`
	City               string                   `json:"city"`
	Area               string                   `json:"area"`
	DeliveryAvailable  bool                     `json:"delivery_available"`
	TestDriveAvailable bool                     `json:"test_drive_available"`
	ReasonsToBuy       []string                 `json:"reasons_to_buy"`
	Highlights         []string                 `json:"highlights"`
	OverallScore       float64                  `json:"overall_score"`
	DimensionsCapacity DimensionsCapacity       `json:"dimensions_capacity"`
	EngineTransmission EngineTransmission       `json:"engine_transmission"`
	FuelPerformance    FuelPerformance          `json:"fuel_performance"`
	SuspensionSteeringBrakes SuspensionSteeringBrakes `json:"suspension_steering_brakes"`
	BookingPolicy      BookingPolicy            `json:"booking_policy"`
	Features           CarFeatures              `json:"features"`
	Tyres              Tyres                    `json:"tyres"`
	Media              CarMedia                 `json:"media"`
	Price              Price                    `json:"price"`
	Custom             []string                 `json:"custom"`
}

// Car is a full listing record as returned by the backend, which is the
// payload plus the server-assigned identity.
type Car struct {
	CarPayload
	CarID     string `json:"car_id"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
