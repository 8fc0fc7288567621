package walk

import (
	"math/rand/v2"

	"github.com/LdDl/pathplot-go/pathplot"
	"gonum.org/v1/gonum/stat/distuv"
)

// Noise adds zero-mean Gaussian error to pose positions, emulating a noisy position sensor
type Noise struct {
	dist distuv.Normal
}

func NewNoise(sigma float64, seed uint64) *Noise {
	return &Noise{
		dist: distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewPCG(seed, ^seed)},
	}
}

// Apply returns pose with noisy position. Heading is kept as is
func (noise *Noise) Apply(pose pathplot.Pose) pathplot.Pose {
	if noise.dist.Sigma <= 0 {
		return pose
	}
	pose.X += noise.dist.Rand()
	pose.Y += noise.dist.Rand()
	return pose
}
