/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonanpack/InputParameters"
	"github.com/notargets/gonanpack/model_problems/Burgers1D"
)

type Model1D struct {
	ICFile  string
	Graph   bool
	Delay   time.Duration
	Profile bool
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional TVD solver for the Burgers equation",
	Long: `
Executes the TVD finite difference solver for the inviscid Burgers equation.
Parameters come from the input file, then the config file, GONANPACK_*
environment variables and flags override them in turn.

gonanpack 1D -I input.yaml --scheme roe-sweby-upwind --limiter G2`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters1D
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		if ip, err = processInput(m1d, viper.GetViper()); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	ip := InputParameters.NewInputParameters1D()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Scheme and Limiter")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the current directory")
	OneDCmd.Flags().String("scheme", ip.Scheme, "TVD scheme: harten-yee-upwind, modified-harten-yee-upwind, roe-sweby-upwind, davis-yee-symmetric")
	OneDCmd.Flags().String("limiter", ip.Limiter, "limiter: G for harten-yee-upwind, G1-G5 for modified-harten-yee-upwind, G1-G3 otherwise")
	OneDCmd.Flags().Float64("CFL", ip.CFL, "Courant number dt/dx")
	OneDCmd.Flags().Float64("eps", ip.Eps, "entropy fix constant, stable for 0 < eps <= 0.125")
	OneDCmd.Flags().IntP("iMax", "n", ip.IMax, "number of grid points, including two ghost points at each end")
	OneDCmd.Flags().Int("maxIterations", ip.MaxIterations, "maximum number of steps")
	OneDCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim, zero for none")
	OneDCmd.Flags().IntP("parallel", "p", ip.ParallelDegree, "number of go routines sweeping the field")
	OneDCmd.Flags().String("errorFile", ip.ErrorFile, "CSV file to append title,numPoints,L1 to, read by convOrder")
	for _, key := range overrideKeys {
		if err := viper.BindPFlag(key, OneDCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

var overrideKeys = []string{"scheme", "limiter", "CFL", "eps", "iMax", "maxIterations", "finalTime", "parallel", "errorFile"}

func processInput(m1d *Model1D, v *viper.Viper) (ip *InputParameters.InputParameters1D, err error) {
	var (
		data []byte
	)
	ip = InputParameters.NewInputParameters1D()
	if len(m1d.ICFile) != 0 {
		if data, err = os.ReadFile(m1d.ICFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse input file %s: %w", m1d.ICFile, err)
			return
		}
	}
	applyOverrides(ip, v)
	err = ip.Validate()
	return
}

// applyOverrides copies the parameters set in v, by config file, environment or
// flag, over the input file values
func applyOverrides(ip *InputParameters.InputParameters1D, v *viper.Viper) {
	if v.IsSet("scheme") {
		ip.Scheme = v.GetString("scheme")
	}
	if v.IsSet("limiter") {
		ip.Limiter = v.GetString("limiter")
	}
	if v.IsSet("CFL") {
		ip.CFL = v.GetFloat64("CFL")
	}
	if v.IsSet("eps") {
		ip.Eps = v.GetFloat64("eps")
	}
	if v.IsSet("iMax") {
		ip.IMax = v.GetInt("iMax")
	}
	if v.IsSet("maxIterations") {
		ip.MaxIterations = v.GetInt("maxIterations")
	}
	if v.IsSet("finalTime") {
		ip.FinalTime = v.GetFloat64("finalTime")
	}
	if v.IsSet("parallel") {
		ip.ParallelDegree = v.GetInt("parallel")
	}
	if v.IsSet("errorFile") {
		ip.ErrorFile = v.GetString("errorFile")
	}
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var (
		c *Burgers1D.Burgers
	)
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if c, err = Burgers1D.NewBurgers(ip); err != nil {
		return
	}
	if err = c.Run(m1d.Graph, m1d.Delay); err != nil {
		return
	}
	if m1d.Graph {
		for {
			time.Sleep(time.Second)
		}
	}
	return
}
