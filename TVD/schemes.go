package TVD

import (
	"fmt"
	"strings"
)

type SchemeType uint8

const (
	HartenYeeUpwind SchemeType = iota
	ModifiedHartenYeeUpwind
	RoeSwebyUpwind
	DavisYeeSymmetric
)

var (
	SchemeNames = map[string]SchemeType{
		"harten-yee-upwind":          HartenYeeUpwind,
		"hartenyeeupwind":            HartenYeeUpwind,
		"hy":                         HartenYeeUpwind,
		"modified-harten-yee-upwind": ModifiedHartenYeeUpwind,
		"modifiedhartenyeeupwind":    ModifiedHartenYeeUpwind,
		"mhy":                        ModifiedHartenYeeUpwind,
		"roe-sweby-upwind":           RoeSwebyUpwind,
		"roeswebyupwind":             RoeSwebyUpwind,
		"rs":                         RoeSwebyUpwind,
		"davis-yee-symmetric":        DavisYeeSymmetric,
		"davisyeesymmetric":          DavisYeeSymmetric,
		"dys":                        DavisYeeSymmetric,
	}
	SchemePrintNames = []string{
		"Harten-Yee-Upwind",
		"Modified-Harten-Yee-Upwind",
		"Roe-Sweby-Upwind",
		"Davis-Yee-Symmetric",
	}
)

func (st SchemeType) String() string {
	if int(st) < len(SchemePrintNames) {
		return SchemePrintNames[st]
	}
	return fmt.Sprintf("SchemeType(%d)", st)
}

// NewSchemeType parses a scheme name. Matching ignores case, and spaces or
// underscores may stand in for dashes.
func NewSchemeType(label string) (st SchemeType, err error) {
	var (
		ok bool
	)
	if st, ok = SchemeNames[normalizeName(label)]; !ok {
		err = fmt.Errorf("%w: [%s], must be one of %v", ErrUnknownScheme, label, SchemePrintNames)
	}
	return
}

type LimiterType uint8

const (
	LimiterG LimiterType = iota
	LimiterG1
	LimiterG2
	LimiterG3
	LimiterG4
	LimiterG5
)

var (
	LimiterNames = map[string]LimiterType{
		"g":  LimiterG,
		"g1": LimiterG1,
		"g2": LimiterG2,
		"g3": LimiterG3,
		"g4": LimiterG4,
		"g5": LimiterG5,
	}
	LimiterPrintNames = []string{"G", "G1", "G2", "G3", "G4", "G5"}
)

func (lt LimiterType) String() string {
	if int(lt) < len(LimiterPrintNames) {
		return LimiterPrintNames[lt]
	}
	return fmt.Sprintf("LimiterType(%d)", lt)
}

func NewLimiterType(label string) (lt LimiterType, err error) {
	var (
		ok bool
	)
	if lt, ok = LimiterNames[normalizeName(label)]; !ok {
		err = fmt.Errorf("%w: [%s], must be one of %v", ErrUnknownLimiter, label, LimiterPrintNames)
	}
	return
}

func normalizeName(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, " ", "-")
	return strings.ReplaceAll(label, "_", "-")
}

var (
	hartenYeeLimiters = map[LimiterType]HartenYeeLimiter{
		LimiterG: HartenYeeG,
	}
	modifiedHartenYeeLimiters = map[LimiterType]DifferenceLimiter{
		LimiterG1: HartenYeeG1,
		LimiterG2: HartenYeeG2,
		LimiterG3: HartenYeeG3,
		LimiterG4: HartenYeeG4,
		LimiterG5: HartenYeeG5,
	}
	roeSwebyLimiters = map[LimiterType]RatioLimiter{
		LimiterG1: RoeSwebyG1,
		LimiterG2: RoeSwebyG2,
		LimiterG3: RoeSwebyG3,
	}
	davisYeeLimiters = map[LimiterType]SymmetricLimiter{
		LimiterG1: DavisYeeG1,
		LimiterG2: DavisYeeG2,
		LimiterG3: DavisYeeG3,
	}
)

// ValidLimiters lists the limiters accepted by the scheme
func (st SchemeType) ValidLimiters() (lts []LimiterType) {
	switch st {
	case HartenYeeUpwind:
		lts = []LimiterType{LimiterG}
	case ModifiedHartenYeeUpwind:
		lts = []LimiterType{LimiterG1, LimiterG2, LimiterG3, LimiterG4, LimiterG5}
	case RoeSwebyUpwind, DavisYeeSymmetric:
		lts = []LimiterType{LimiterG1, LimiterG2, LimiterG3}
	}
	return
}

// CellCorrection returns the flux corrections at both faces of a stencil's cell
type CellCorrection func(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64)

// Scheme is a validated scheme and limiter pair with its limiter and flux
// limiter function bound together
type Scheme struct {
	Type       SchemeType
	Limiter    LimiterType
	correction CellCorrection
}

// NewScheme parses both names and resolves the pair
func NewScheme(schemeName, limiterName string) (s *Scheme, err error) {
	var (
		st SchemeType
		lt LimiterType
	)
	if st, err = NewSchemeType(schemeName); err != nil {
		return
	}
	if lt, err = NewLimiterType(limiterName); err != nil {
		return
	}
	return Resolve(st, lt)
}

// Resolve binds the limiter and flux limiter function for a scheme, failing
// with an *InvalidSchemeCombinationError if the scheme does not accept the
// limiter
func Resolve(st SchemeType, lt LimiterType) (s *Scheme, err error) {
	var (
		correction CellCorrection
	)
	switch st {
	case HartenYeeUpwind:
		if G, ok := hartenYeeLimiters[lt]; ok {
			correction = hartenYeeCorrection(G)
		}
	case ModifiedHartenYeeUpwind:
		if G, ok := modifiedHartenYeeLimiters[lt]; ok {
			correction = modifiedHartenYeeCorrection(G)
		}
	case RoeSwebyUpwind:
		if G, ok := roeSwebyLimiters[lt]; ok {
			correction = roeSwebyCorrection(G)
		}
	case DavisYeeSymmetric:
		if G, ok := davisYeeLimiters[lt]; ok {
			correction = davisYeeCorrection(G)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownScheme, st)
		return
	}
	if correction == nil {
		err = &InvalidSchemeCombinationError{
			Scheme:  st,
			Limiter: lt,
			Valid:   st.ValidLimiters(),
		}
		return
	}
	s = &Scheme{
		Type:       st,
		Limiter:    lt,
		correction: correction,
	}
	return
}

func (s *Scheme) String() string {
	return fmt.Sprintf("%s, limiter %s", s.Type, s.Limiter)
}

// Correction evaluates the flux corrections (phiPlus, phiMinus) for one cell
func (s *Scheme) Correction(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64) {
	return s.correction(st, Courant, Eps)
}

func hartenYeeCorrection(G HartenYeeLimiter) CellCorrection {
	return func(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64) {
		GiPlus1 := G(st.AlphaiPlus32, st.AlphaiPlus12, st.DUiPlus32, st.DUiPlus12, Courant, Eps)
		Gi := G(st.AlphaiPlus12, st.AlphaiMinus12, st.DUiPlus12, st.DUiMinus12, Courant, Eps)
		GiMinus1 := G(st.AlphaiMinus12, st.AlphaiMinus32, st.DUiMinus12, st.DUiMinus32, Courant, Eps)
		return HartenYeeFlux(GiMinus1, Gi, GiPlus1, st.DUiPlus12, st.DUiMinus12,
			st.AlphaiPlus12, st.AlphaiMinus12, Eps)
	}
}

func modifiedHartenYeeCorrection(G DifferenceLimiter) CellCorrection {
	return func(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64) {
		var (
			GiPlus1  = G(st.DUiPlus32, st.DUiPlus12)
			Gi       = G(st.DUiPlus12, st.DUiMinus12)
			GiMinus1 = G(st.DUiMinus12, st.DUiMinus32)
		)
		return ModifiedHartenYeeFlux(GiMinus1, Gi, GiPlus1, st.DUiPlus12, st.DUiMinus12,
			st.AlphaiPlus12, st.AlphaiMinus12, Eps, Courant)
	}
}

func roeSwebyCorrection(G RatioLimiter) CellCorrection {
	return func(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64) {
		var (
			// Cell i is stencil point 2, its faces are (2,3) and (1,2)
			rPlus  = st.UpwindRatio(2, st.AlphaiPlus12, st.DUiPlus12)
			rMinus = st.UpwindRatio(1, st.AlphaiMinus12, st.DUiMinus12)
		)
		return RoeSwebyFlux(G(rPlus), G(rMinus), st.DUiPlus12, st.DUiMinus12,
			st.AlphaiPlus12, st.AlphaiMinus12, Courant)
	}
}

func davisYeeCorrection(G SymmetricLimiter) CellCorrection {
	return func(st *Stencil, Courant, Eps float64) (phiPlus, phiMinus float64) {
		var (
			GiPlus12  = G(st.DUiMinus12, st.DUiPlus12, st.DUiPlus32)
			GiMinus12 = G(st.DUiMinus32, st.DUiMinus12, st.DUiPlus12)
		)
		return DavisYeeFlux(GiPlus12, GiMinus12, st.DUiPlus12, st.DUiMinus12,
			st.AlphaiPlus12, st.AlphaiMinus12, Eps, Courant)
	}
}
