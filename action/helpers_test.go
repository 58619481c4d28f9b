package action_test

import "github.com/katalvlaran/minuscule/rational"

func fracInt(n int64) rational.Fraction { return rational.Int(n) }
