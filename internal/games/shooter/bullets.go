package shooter

// moveBullets advances every live bullet one row toward the top and retires
// those that leave the playfield. It returns the rows held before the move,
// which the collision sweep needs.
func (g *Game) moveBullets() [MaxBullets]int {
	var prev [MaxBullets]int
	for i := range g.bullets {
		prev[i] = g.bullets[i].Row
	}

	for i := range g.bullets {
		if !g.bullets[i].Active() {
			continue
		}
		g.bullets[i].Row--
		if g.bullets[i].Row < TopRow {
			g.retireBullet(i)
		}
	}
	return prev
}
