package generator

import (
	"roomgrid/pkg/engine/random"
	"roomgrid/pkg/engine/world"
	"roomgrid/pkg/game/entities"
	"roomgrid/pkg/game/level"
)

// PartitionedGenerator splits the level into an equal N x N room partition,
// then opens a single chain of doors from the start room to the exit room.
type PartitionedGenerator struct {
	// Observer, when set, is called after each stage completes
	Observer func(stage Stage, lvl *level.Level)
}

// Name returns the name of this generator
func (g *PartitionedGenerator) Name() string {
	return "Room Partition"
}

// partitionRun holds the state of a single Generate call
type partitionRun struct {
	cfg Config
	rng random.Source
	lvl *level.Level

	player    *entities.Player
	startRoom int
	exitRoom  int
	exitPath  []int
}

// Generate runs the full pipeline. On error no level is returned and the
// player is left where it was.
func (g *PartitionedGenerator) Generate(cfg Config, player *entities.Player, rng random.Source) (*level.Level, error) {
	if rng == nil {
		return nil, &ConfigError{Field: "random source", Reason: "is required"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	run := &partitionRun{cfg: cfg, rng: rng, player: player}
	stages := []struct {
		stage Stage
		fn    func() error
	}{
		{StageGridInit, run.initGrid},
		{StagePartition, run.assignRooms},
		{StageCarve, run.carveRooms},
		{StageStart, run.placePlayerInStartingRoom},
		{StageExitRoom, run.selectExitRoom},
		{StageExitPoint, run.placeExit},
		{StagePath, run.findExitPath},
		{StageDoors, run.placeDoorsOnPath},
	}
	for _, s := range stages {
		if err := s.fn(); err != nil {
			return nil, err
		}
		if g.Observer != nil {
			g.Observer(s.stage, run.lvl)
		}
	}

	run.player.MoveTo(run.lvl.PlayerSpawn)
	run.lvl.Player = run.player
	return run.lvl, nil
}

// initGrid creates the level with every cell solid
func (r *partitionRun) initGrid() error {
	grid := &world.Grid{}
	grid.Initialize(r.cfg.LevelWidth, r.cfg.LevelHeight)
	r.lvl = level.New(r.cfg.Depth, r.cfg.Columns, r.cfg.Rows, grid)
	return nil
}

// assignRooms fills the registry, columns outer and rows inner.
// Each room is one cell smaller than its slot on both axes, which leaves a
// solid column and row between neighbours.
func (r *partitionRun) assignRooms() error {
	roomWidth, roomHeight := r.cfg.RoomWidth(), r.cfg.RoomHeight()
	for col := 0; col < r.cfg.Columns; col++ {
		for row := 0; row < r.cfg.Rows; row++ {
			room := world.NewRoom(col*roomWidth, row*roomHeight, roomWidth-1, roomHeight-1)
			r.lvl.Rooms = append(r.lvl.Rooms, room)
		}
	}
	return nil
}

// carveRooms opens every room interior, leaving its outer ring as walls
func (r *partitionRun) carveRooms() error {
	grid := r.lvl.Grid
	for _, room := range r.lvl.Rooms {
		if !room.HasInterior() {
			return &DegenerateRoomError{Width: room.Width, Height: room.Height}
		}
		for x := room.Left() + 1; x < room.Right(); x++ {
			for y := room.Top() + 1; y < room.Bottom(); y++ {
				grid.SetCellProperties(x, y, true, true, false)
			}
		}
	}
	return nil
}

// selectRandomRoom returns a uniformly drawn registry index, last room included
func (r *partitionRun) selectRandomRoom() int {
	return random.Index(r.rng, len(r.lvl.Rooms))
}

// placePlayerInStartingRoom picks the start room and records the spawn at its center.
// The first level has no player yet, so one is created here.
func (r *partitionRun) placePlayerInStartingRoom() error {
	if r.player == nil {
		r.player = entities.NewPlayer()
	}
	r.startRoom = r.selectRandomRoom()
	r.lvl.PlayerSpawn = r.lvl.Rooms[r.startRoom].Center()
	return nil
}

// selectExitRoom picks a room that does not hold the player spawn
func (r *partitionRun) selectExitRoom() error {
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		idx := r.selectRandomRoom()
		if !r.lvl.Rooms[idx].Contains(r.lvl.PlayerSpawn) {
			r.exitRoom = idx
			return nil
		}
	}
	return &RetryError{Stage: StageExitRoom, Attempts: r.cfg.MaxAttempts}
}

// placeExit puts the exit on a random walkable cell of the exit room
func (r *partitionRun) placeExit() error {
	room := r.lvl.Rooms[r.exitRoom]
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		p := randomPointInRoom(r.rng, room)
		if r.lvl.Grid.IsWalkable(p.X, p.Y) {
			r.lvl.Exit = entities.NewExit(p)
			return nil
		}
	}
	return &RetryError{Stage: StageExitPoint, Attempts: r.cfg.MaxAttempts}
}

// randomPointInRoom returns a uniform point of the room's half-open rectangle
func randomPointInRoom(rng random.Source, room world.Room) world.Point {
	return world.Point{
		X: random.Between(rng, room.Left(), room.Right()),
		Y: random.Between(rng, room.Top(), room.Bottom()),
	}
}

// findExitPath walks from the start room to the exit room one partition
// step at a time. Each step draws an axis; when the current room is already
// aligned with the exit on that axis, it steps along the other one.
func (r *partitionRun) findExitPath() error {
	rooms := r.lvl.Rooms
	target := rooms[r.exitRoom].Center()

	current := r.startRoom
	r.exitPath = append(r.exitPath[:0], current)

	for current != r.exitRoom {
		col, row := r.lvl.RoomCoords(current)
		center := rooms[current].Center()

		stepX := random.Coin(r.rng) == 0
		if center.X == target.X {
			stepX = false
		} else if center.Y == target.Y {
			stepX = true
		}

		if stepX {
			if center.X < target.X {
				col++
			} else {
				col--
			}
		} else {
			if center.Y < target.Y {
				row++
			} else {
				row--
			}
		}

		current = r.lvl.RoomIndex(col, row)
		r.exitPath = append(r.exitPath, current)
	}

	r.lvl.Path = append([]int(nil), r.exitPath...)
	return nil
}

// placeDoorsOnPath opens one door pair between each consecutive pair of
// rooms on the path, at the middle of the facing walls
func (r *partitionRun) placeDoorsOnPath() error {
	rooms := r.lvl.Rooms
	for i := 0; i+1 < len(r.exitPath); i++ {
		from, to := r.exitPath[i], r.exitPath[i+1]
		this, next := rooms[from], rooms[to]

		dir, ok := world.DirectionBetween(this.Center(), next.Center())
		if !ok {
			continue
		}

		near := this.Wall(dir)
		far := next.Wall(dir.Opposite())
		r.lvl.Grid.SetIsWalkable(near.X, near.Y, true)
		r.lvl.Grid.SetIsWalkable(far.X, far.Y, true)
		r.lvl.Doors = append(r.lvl.Doors, entities.NewDoor(from, to, dir, near, far))
	}
	return nil
}
