package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 texCoord;
uniform mat4 projection;
uniform mat4 model;
out vec2 uv;
void main() {
	uv = texCoord;
	gl_Position = projection * model * vec4(position, 0.0, 1.0);
}` + "\x00"

// Transparent atlas pixels show a checkerboard so empty slots and glass
// are told apart from black.
const fragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D atlas;
uniform vec2 highlightMin;
uniform vec2 highlightMax;
out vec4 fragColor;
void main() {
	vec4 c = texture(atlas, uv);
	float check = mod(floor(gl_FragCoord.x / 8.0) + floor(gl_FragCoord.y / 8.0), 2.0);
	vec3 bg = mix(vec3(0.25), vec3(0.35), check);
	vec3 rgb = mix(bg, c.rgb, c.a);
	if (all(greaterThanEqual(uv, highlightMin)) && all(lessThan(uv, highlightMax))) {
		rgb = mix(rgb, vec3(1.0, 1.0, 0.3), 0.25);
	}
	fragColor = vec4(rgb, 1.0);
}` + "\x00"

// newProgram compiles shaders and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compile(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compile error: %w", err)
	}
	f, err := compile(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(v)
		return 0, fmt.Errorf("fragment shader compile error: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	// shaders can be deleted after linking
	gl.DeleteShader(v)
	gl.DeleteShader(f)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link error: %s", string(log))
	}
	return program, nil
}

func compile(kind uint32, src string) (uint32, error) {
	s := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(s, logLength, nil, &log[0])
		gl.DeleteShader(s)
		return 0, fmt.Errorf("%s", string(log))
	}
	return s, nil
}
