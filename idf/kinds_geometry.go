package idf

import "fmt"

// Zone is the thermal zone object.
type Zone struct {
	ZoneName                    string
	DirectionOfRelativeNorthDeg float64
	OriginX, OriginY, OriginZ   float64
	Type                        int
	Multiplier                  int
	CeilingHeightM              float64
	VolumeM3                    float64
}

func (o Zone) Kind() string { return "Zone" }
func (o Zone) Name() string { return o.ZoneName }
func (o Zone) Fields() []Field {
	return []Field{
		F(o.ZoneName, "Name"),
		F(o.DirectionOfRelativeNorthDeg, "Direction of Relative North"),
		F(o.OriginX, "X Origin"),
		F(o.OriginY, "Y Origin"),
		F(o.OriginZ, "Z Origin"),
		F(o.Type, "Type"),
		F(o.Multiplier, "Multiplier"),
		F(o.CeilingHeightM, "Ceiling Height"),
		F(o.VolumeM3, "Volume"),
	}
}

// BuildingSurfaceDetailed is a wall/floor/ceiling/roof surface with an
// explicit vertex list.
type BuildingSurfaceDetailed struct {
	SurfaceName                    string
	SurfaceType                    string // Wall|Floor|Roof|Ceiling
	ConstructionName               string
	ZoneName                       string
	OutsideBoundaryCondition       string // Outdoors|Ground|Adiabatic|Surface
	OutsideBoundaryConditionObject string // peer surface name, or ""
	SunExposed                     bool
	WindExposed                    bool
	ViewFactorToGround             float64
	Vertices                       []Vertex3
}

// Vertex3 is one (x, y, z) surface vertex in meters.
type Vertex3 struct{ X, Y, Z float64 }

func (o BuildingSurfaceDetailed) Kind() string { return "BuildingSurface:Detailed" }
func (o BuildingSurfaceDetailed) Name() string { return o.SurfaceName }
func (o BuildingSurfaceDetailed) Fields() []Field {
	sunExposed := "NoSun"
	if o.SunExposed {
		sunExposed = "SunExposed"
	}
	windExposed := "NoWind"
	if o.WindExposed {
		windExposed = "WindExposed"
	}
	fields := []Field{
		F(o.SurfaceName, "Name"),
		F(o.SurfaceType, "Surface Type"),
		F(o.ConstructionName, "Construction Name"),
		F(o.ZoneName, "Zone Name"),
		F(o.OutsideBoundaryCondition, "Outside Boundary Condition"),
		F(o.OutsideBoundaryConditionObject, "Outside Boundary Condition Object"),
		F(sunExposed, "Sun Exposure"),
		F(windExposed, "Wind Exposure"),
		F(o.ViewFactorToGround, "View Factor to Ground"),
		F(len(o.Vertices), "Number of Vertices"),
	}
	for i, v := range o.Vertices {
		fields = append(fields,
			F(v.X, fmt.Sprintf("Vertex %d Xcoordinate", i+1)),
			F(v.Y, fmt.Sprintf("Vertex %d Ycoordinate", i+1)),
			F(v.Z, fmt.Sprintf("Vertex %d Zcoordinate", i+1)),
		)
	}
	return fields
}

// FenestrationSurfaceDetailed is a window or door hosted by a parent
// surface.
type FenestrationSurfaceDetailed struct {
	FenestrationName    string
	SurfaceType         string // Window|Door
	ConstructionName    string
	BuildingSurfaceName string
	ViewFactorToGround  float64
	Vertices            []Vertex3
}

func (o FenestrationSurfaceDetailed) Kind() string { return "FenestrationSurface:Detailed" }
func (o FenestrationSurfaceDetailed) Name() string { return o.FenestrationName }
func (o FenestrationSurfaceDetailed) Fields() []Field {
	fields := []Field{
		F(o.FenestrationName, "Name"),
		F(o.SurfaceType, "Surface Type"),
		F(o.ConstructionName, "Construction Name"),
		F(o.BuildingSurfaceName, "Building Surface Name"),
		F("", "Outside Boundary Condition Object"),
		F(o.ViewFactorToGround, "View Factor to Ground"),
		F("", "Frame and Divider Name"),
		F(1, "Multiplier"),
		F(len(o.Vertices), "Number of Vertices"),
	}
	for i, v := range o.Vertices {
		fields = append(fields,
			F(v.X, fmt.Sprintf("Vertex %d Xcoordinate", i+1)),
			F(v.Y, fmt.Sprintf("Vertex %d Ycoordinate", i+1)),
			F(v.Z, fmt.Sprintf("Vertex %d Zcoordinate", i+1)),
		)
	}
	return fields
}
