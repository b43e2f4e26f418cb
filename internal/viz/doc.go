// Package viz renders branches and limit-cycle profiles in the
// terminal.
//
//   - [ProfilePlot]: one variable of a cycle profile as a line chart
//   - [BranchPlot]: a branch diagram (parameter vs. a state component)
//     in logical point order
//   - [PhasePlot]: a 2D projection of a cycle profile on a Braille
//     pixel canvas
package viz
