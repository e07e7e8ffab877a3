package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/gltutorials/ubo"
)

// Program is a linked shader program with a uniform location cache.
type Program struct {
	ID uint32

	locationCache map[string]int32
}

// NewProgram compiles and links a vertex and a fragment shader.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return nil, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return &Program{
		ID:            program,
		locationCache: map[string]int32{},
	}, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v shader: %v\nsource:\n%v",
			shaderKind(shaderType), strings.TrimRight(log, "\x00"), source)
	}

	return shader, nil
}

func (program *Program) Use() { gl.UseProgram(program.ID) }

func (program *Program) Delete() {
	gl.DeleteProgram(program.ID)
	program.ID = 0
}

func (program *Program) uniformLocation(name string) int32 {
	location, ok := program.locationCache[name]
	if !ok {
		location = gl.GetUniformLocation(program.ID, gl.Str(name+"\x00"))
		program.locationCache[name] = location
	}
	return location
}

// Uniform setters ignore names the linker optimized away.

func (program *Program) UniformInt(name string, v int32) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform1i(location, v)
	}
}

func (program *Program) UniformFloat32(name string, v float32) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform1f(location, v)
	}
}

func (program *Program) UniformMatrix(name string, v m.Mat4) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	}
}

// BindBlock assigns the named uniform block to a binding point.
func (program *Program) BindBlock(name string, binding uint32) error {
	index := gl.GetUniformBlockIndex(program.ID, gl.Str(name+"\x00"))
	if index == gl.INVALID_INDEX {
		return fmt.Errorf("uniform block %q not found", name)
	}
	gl.UniformBlockBinding(program.ID, index, binding)
	return nil
}

// BindBlocks assigns every block of layout to its binding point.
func (program *Program) BindBlocks(layout *ubo.Layout) error {
	for _, block := range layout.Blocks {
		if err := program.BindBlock(block.Name, block.Binding); err != nil {
			return err
		}
	}
	return nil
}
