package heattransfer

// Upper bound of the laminar regime for internal flow (exclusive), -
const ReLaminar = 2300.0

// Lower bound of the fully turbulent regime for internal flow (exclusive), -
const ReTurbulent = 4000.0

// Fully developed laminar Nusselt number, circular tube, constant wall temperature, -
const NuLaminar = 3.66

// Tolerance used to detect a capacity ratio of one, -
const capacityRatioUnityTol = 1e-9

// Banked-tube row count above which no row correction applies, -
const rowsFullyDeveloped = 20

// Default minor loss coefficients, -
const (
	DefaultKInlet  = 0.5 // abrupt entrance
	DefaultKOutlet = 1.0 // discharge into a plenum or header
	DefaultKTurn   = 1.5 // per 180 degree return
)

// Default lumped per-row pressure loss multiplier for outside flow, -
const DefaultZetaOutside = 1.2
