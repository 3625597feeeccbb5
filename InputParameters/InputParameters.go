package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gonanpack/TVD"
	"github.com/notargets/gonanpack/utils"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title                string  `yaml:"Title"`
	CFL                  float64 `yaml:"CFL"`
	Eps                  float64 `yaml:"Eps"`
	Scheme               string  `yaml:"Scheme"`
	Limiter              string  `yaml:"Limiter"`
	XMin                 float64 `yaml:"XMin"`
	XMax                 float64 `yaml:"XMax"`
	IMax                 int     `yaml:"IMax"`
	InitType             string  `yaml:"InitType"`
	ULeft                float64 `yaml:"ULeft"`
	URight               float64 `yaml:"URight"`
	BCLeft               string  `yaml:"BCLeft"`
	BCRight              string  `yaml:"BCRight"`
	MaxIterations        int     `yaml:"MaxIterations"`
	ConvergenceTolerance float64 `yaml:"ConvergenceTolerance"`
	FinalTime            float64 `yaml:"FinalTime"` // Zero runs until converged or MaxIterations
	PrintFrequency       int     `yaml:"PrintFrequency"`
	ParallelDegree       int     `yaml:"ParallelDegree"`
	OutputFile           string  `yaml:"OutputFile"`
	HistoryFile          string  `yaml:"HistoryFile"`
	ErrorFile            string  `yaml:"ErrorFile"` // Appends title,numPoints,L1 for tools/convOrder
}

// NewInputParameters1D returns the defaults, a right moving shock on [0,1]
func NewInputParameters1D() (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Title:          "Burgers Step",
		CFL:            0.5,
		Eps:            TVD.DefaultEps,
		Scheme:         "modified-harten-yee-upwind",
		Limiter:        "G3",
		XMin:           0,
		XMax:           1,
		IMax:           51,
		InitType:       "step",
		ULeft:          1,
		URight:         0,
		BCLeft:         "dirichlet",
		BCRight:        "dirichlet",
		MaxIterations:  100,
		PrintFrequency: 10,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks everything that can be checked before a field exists
func (ip *InputParameters1D) Validate() (err error) {
	if _, err = TVD.NewScheme(ip.Scheme, ip.Limiter); err != nil {
		return
	}
	switch {
	case ip.CFL <= 0:
		err = fmt.Errorf("CFL must be positive, have %8.5f", ip.CFL)
	case ip.Eps < 0:
		err = fmt.Errorf("Eps must not be negative, have %8.5f", ip.Eps)
	case ip.IMax < TVD.MinFieldLength:
		err = fmt.Errorf("IMax must be at least %d, have %d", TVD.MinFieldLength, ip.IMax)
	case !(ip.XMax > ip.XMin):
		err = fmt.Errorf("XMax must be greater than XMin, have [%8.5f,%8.5f]", ip.XMin, ip.XMax)
	case ip.MaxIterations <= 0 && ip.FinalTime <= 0 && ip.ConvergenceTolerance <= 0:
		err = fmt.Errorf("no stopping criterion, set MaxIterations, FinalTime or ConvergenceTolerance")
	case len(ip.ErrorFile) != 0 && strings.EqualFold(strings.TrimSpace(ip.InitType), "sine"):
		err = fmt.Errorf("ErrorFile needs an exact solution, not available for InitType %s", ip.InitType)
	}
	if err != nil {
		return
	}
	var (
		bcs [2]utils.BCType
	)
	for i, bc := range []string{ip.BCLeft, ip.BCRight} {
		if bcs[i], err = utils.ParseBCName(bc); err != nil {
			return
		}
	}
	if (bcs[0] == utils.BCPeriodic) != (bcs[1] == utils.BCPeriodic) {
		err = fmt.Errorf("periodic boundaries must be used on both ends, have [%s,%s]", ip.BCLeft, ip.BCRight)
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Eps\n", ip.Eps)
	fmt.Printf("[%s]\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t= IMax\n", ip.IMax)
	fmt.Printf("[%s]\t\t\t= InitType, ULeft = %8.5f, URight = %8.5f\n", ip.InitType, ip.ULeft, ip.URight)
	fmt.Printf("[%s,%s]\t= BCs\n", ip.BCLeft, ip.BCRight)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", ip.MaxIterations)
	fmt.Printf("%8.5g\t\t= ConvergenceTolerance\n", ip.ConvergenceTolerance)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	if len(ip.ErrorFile) != 0 {
		fmt.Printf("[%s]\t= ErrorFile\n", ip.ErrorFile)
	}
}
