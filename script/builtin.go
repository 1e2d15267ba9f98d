package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/memory"
)

type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// toByte checks that a Starlark integer fits in a byte.
func toByte(value int) (data uint8, err error) {
	if value < 0 || value > 0xff {
		err = ErrByteRange
		return
	}

	data = uint8(value)
	return
}

// builtins returns the emulator bindings, by name.
func builtins(emu *emulator.Emulator) map[string]builtinFunc {
	return map[string]builtinFunc{
		"reset": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			emu.Reset()
			return starlark.None, nil
		},
		"boot": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var vectored bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "vectored?", &vectored); err != nil {
				return nil, err
			}
			emu.Vectored = vectored
			if err := emu.Boot(); err != nil {
				return nil, err
			}
			return starlark.MakeInt(emu.Pc()), nil
		},
		"poke": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr, value int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
				return nil, err
			}
			address, err := memory.Address(int64(addr))
			if err != nil {
				return nil, err
			}
			data, err := toByte(value)
			if err != nil {
				return nil, err
			}
			stored, err := emu.Memory.Write(address, data)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(stored)), nil
		},
		"peek": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
				return nil, err
			}
			address, err := memory.Address(int64(addr))
			if err != nil {
				return nil, err
			}
			value, err := emu.Memory.Read(address)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(value)), nil
		},
		"load": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr int
			var list *starlark.List
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "data", &list); err != nil {
				return nil, err
			}
			address, err := memory.Address(int64(addr))
			if err != nil {
				return nil, err
			}
			data := make([]uint8, list.Len())
			for n := range data {
				value, err := starlark.AsInt32(list.Index(n))
				if err != nil {
					return nil, err
				}
				data[n], err = toByte(value)
				if err != nil {
					return nil, err
				}
			}
			if err := emu.Load(address, data); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},
		"run": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			cycles := emulator.DEFAULT_BUDGET
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cycles?", &cycles); err != nil {
				return nil, err
			}
			remaining, err := emu.Run(cycles)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(remaining), nil
		},
		"step": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			cycles, err := emu.Step()
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(cycles), nil
		},
		"reg": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			value, err := emu.Cpu.Register(name)
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(value)), nil
		},
		"set_reg": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var value int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &value); err != nil {
				return nil, err
			}
			if value < 0 || value > 0xffff {
				return nil, cpu.ErrRegisterValue
			}
			if err := emu.Cpu.SetRegister(name, uint16(value)); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},
		"flag": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			set, err := emu.Cpu.Flag(name)
			if err != nil {
				return nil, err
			}
			return starlark.Bool(set), nil
		},
		"set_flag": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var set bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "set", &set); err != nil {
				return nil, err
			}
			if err := emu.Cpu.SetFlag(name, set); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},
		"status": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(emu.Cpu.Status())), nil
		},
		"set_status": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "value", &value); err != nil {
				return nil, err
			}
			status, err := toByte(value)
			if err != nil {
				return nil, err
			}
			emu.Cpu.SetStatus(status)
			return starlark.None, nil
		},
		"dump": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr int
			length := 16
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "length?", &length); err != nil {
				return nil, err
			}
			address, err := memory.Address(int64(addr))
			if err != nil {
				return nil, err
			}
			text, err := emu.Memory.DumpString(address, length)
			if err != nil {
				return nil, err
			}
			return starlark.String(text), nil
		},
		"trace": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			on := true
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "on?", &on); err != nil {
				return nil, err
			}
			emu.Cpu.Tracing = on
			emu.Cpu.Trace = nil
			return starlark.None, nil
		},
		"accesses": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			elems := make([]starlark.Value, 0, len(emu.Cpu.Trace))
			for _, access := range emu.Cpu.Trace {
				elems = append(elems, starlark.Tuple{
					starlark.String(access.Kind.String()),
					starlark.MakeInt(int(access.Address)),
					starlark.MakeInt(int(access.Value)),
				})
			}
			return starlark.NewList(elems), nil
		},
	}
}
