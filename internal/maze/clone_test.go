package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWallClone(t *testing.T) {
	for _, wall := range []*Wall{NewWall(), NewBombedWall()} {
		clone := wall.Clone()
		require.Equal(t, wall, clone)
		require.NotSame(t, wall, clone)
	}
}

func TestRoomCloneIsIndependent(t *testing.T) {
	room := NewEnchantedRoom(3, Spell{Incantation: "aperio"})
	room.SetSide(North, NewWall())
	room.SetSide(East, NewDoor(room, NewRoom(4)))

	clone := room.Clone()
	require.Equal(t, room, clone)
	require.NotSame(t, room, clone)
	require.NotSame(t, room.GetSide(North), clone.GetSide(North))
	require.NotSame(t, room.GetSide(East), clone.GetSide(East))

	clone.SetNumber(9)
	clone.SetSide(North, NewBombedWall())
	clone.SetSide(South, NewWall())
	clone.Spell().Incantation = "sesame"
	clone.GetSide(East).(*Door).AddRooms(NewRoom(10), NewRoom(11))

	require.Equal(t, 3, room.Number())
	require.False(t, room.GetSide(North).(*Wall).Bombed())
	require.Nil(t, room.GetSide(South))
	require.Equal(t, "aperio", room.Spell().Incantation)
	first, _ := room.GetSide(East).(*Door).Rooms()
	require.Same(t, room, first)
}

func TestDoorCloneIsIndependent(t *testing.T) {
	a, b := NewRoom(1), NewRoom(2)
	door := NewDoorNeedingSpell(a, b)

	clone := door.Clone()
	require.Equal(t, door, clone)
	require.NotSame(t, door, clone)

	clone.AddRooms(NewRoom(5), NewRoom(6))

	first, second := door.Rooms()
	require.Same(t, a, first)
	require.Same(t, b, second)
	require.True(t, door.NeedsSpell())
}

func TestMazeCloneIsDeep(t *testing.T) {
	original := NewGame().BuildMaze(NewStandardBuilder())

	clone := original.Clone()
	require.Equal(t, original, clone)
	require.NotSame(t, original, clone)

	cloneFirst, cloneSecond := clone.GetRoom(1), clone.GetRoom(2)
	require.NotSame(t, original.GetRoom(1), cloneFirst)

	door, ok := cloneFirst.GetSide(East).(*Door)
	require.True(t, ok)
	require.Same(t, door, cloneSecond.GetSide(West))
	require.NotSame(t, original.GetRoom(1).GetSide(East), door)
	require.Len(t, clone.Doors(), 1)
	require.Same(t, door, clone.Doors()[0])

	first, second := door.Rooms()
	require.Same(t, cloneFirst, first)
	require.Same(t, cloneSecond, second)

	cloneFirst.SetSide(North, NewBombedWall())
	clone.AddRoom(NewRoom(3))
	door.AddRooms(NewRoom(8), NewRoom(9))

	require.Equal(t, 2, original.RoomCount())
	require.False(t, original.GetRoom(1).GetSide(North).(*Wall).Bombed())
	origFirst, origSecond := original.GetRoom(1).GetSide(East).(*Door).Rooms()
	require.Same(t, original.GetRoom(1), origFirst)
	require.Same(t, original.GetRoom(2), origSecond)
}

func TestPrototypeFactoryLeavesPrototypesUntouched(t *testing.T) {
	protoMaze := NewMaze()
	protoRoom := NewRoom(0)
	protoWall := NewBombedWall()
	protoDoor := blankDoor()
	protoFirst, protoSecond := protoDoor.Rooms()

	factory := NewPrototypeFactory(protoMaze, protoRoom, protoWall, protoDoor)
	m := NewGame().CreateMaze(factory)

	require.Equal(t, 2, m.RoomCount())
	require.Equal(t, 0, protoMaze.RoomCount())
	require.Equal(t, 0, protoRoom.Number())
	for _, d := range Directions() {
		require.Nil(t, protoRoom.GetSide(d))
	}
	first, second := protoDoor.Rooms()
	require.Same(t, protoFirst, first)
	require.Same(t, protoSecond, second)

	wall, ok := m.GetRoom(1).GetSide(North).(*Wall)
	require.True(t, ok)
	require.True(t, wall.Bombed())
	require.NotSame(t, protoWall, wall)
}
