// SPDX-License-Identifier: MIT

package lawdesc

// Node is one law in a description. Byte-valued parameters are pointers so
// that a missing key can be told apart from zero.
type Node struct {
	Family string `yaml:"family"`
	N      int    `yaml:"n"`

	C       *int  `yaml:"c,omitempty"`
	S0      *int  `yaml:"s0,omitempty"`
	Delta   *int  `yaml:"delta,omitempty"`
	Pattern []int `yaml:"pattern,omitempty,flow"`
	Mask    *int  `yaml:"mask,omitempty"`
	K       *int  `yaml:"k,omitempty"`
	R0      *int  `yaml:"r0,omitempty"`
	DS      *int  `yaml:"ds,omitempty"`
	DR      *int  `yaml:"dr,omitempty"`

	M          int    `yaml:"m,omitempty"`
	Center     int    `yaml:"center,omitempty"`
	Alpha      int    `yaml:"alpha,omitempty"`
	Beta       int    `yaml:"beta,omitempty"`
	Completion string `yaml:"completion,omitempty"`

	Half     *Node      `yaml:"half,omitempty"`
	Sub      *Node      `yaml:"sub,omitempty"`
	Radial   *Node      `yaml:"radial,omitempty"`
	Base     *Node      `yaml:"base,omitempty"`
	DeltaLaw *Node      `yaml:"delta_law,omitempty"`
	Inner    *Node      `yaml:"inner,omitempty"`
	Segments []*Node    `yaml:"segments,omitempty"`
	Meta     *MetaNode  `yaml:"meta,omitempty"`
	Rings    []RingNode `yaml:"rings,omitempty"`
}

// MetaNode is the parametric shape of a radial law. Coefficients a shape does
// not use are ignored.
type MetaNode struct {
	Type string `yaml:"type"`

	BaseS0        int `yaml:"base_s0,omitempty"`
	GradientS0    int `yaml:"gradient_s0,omitempty"`
	Delta         int `yaml:"delta,omitempty"`
	BaseDelta     int `yaml:"base_delta,omitempty"`
	GradientDelta int `yaml:"gradient_delta,omitempty"`
	Alpha0        int `yaml:"alpha0,omitempty"`
	Alpha1        int `yaml:"alpha1,omitempty"`
	Beta0         int `yaml:"beta0,omitempty"`
	Beta1         int `yaml:"beta1,omitempty"`

	Left  *Node `yaml:"left,omitempty"`
	Right *Node `yaml:"right,omitempty"`
}

// RingNode binds a radius to its ring law.
type RingNode struct {
	Radius int   `yaml:"radius"`
	Law    *Node `yaml:"law"`
}
