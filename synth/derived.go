package synth

func Derived1[T0 any](
	key0 string,
	fn func(T0) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
	)
}

func Derived2[T0, T1 any](
	key0 string,
	key1 string,
	fn func(T0, T1) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
	)
}

func Derived3[T0, T1, T2 any](
	key0 string,
	key1 string,
	key2 string,
	fn func(T0, T1, T2) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
	)
}

func Derived4[T0, T1, T2, T3 any](
	key0 string,
	key1 string,
	key2 string,
	key3 string,
	fn func(T0, T1, T2, T3) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		v3, err := property[T3](e, key3)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
			v3,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
		key3,
	)
}

func Derived5[T0, T1, T2, T3, T4 any](
	key0 string,
	key1 string,
	key2 string,
	key3 string,
	key4 string,
	fn func(T0, T1, T2, T3, T4) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		v3, err := property[T3](e, key3)
		if err != nil {
			return nil, err
		}
		v4, err := property[T4](e, key4)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
			v3,
			v4,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
		key3,
		key4,
	)
}

func Derived6[T0, T1, T2, T3, T4, T5 any](
	key0 string,
	key1 string,
	key2 string,
	key3 string,
	key4 string,
	key5 string,
	fn func(T0, T1, T2, T3, T4, T5) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		v3, err := property[T3](e, key3)
		if err != nil {
			return nil, err
		}
		v4, err := property[T4](e, key4)
		if err != nil {
			return nil, err
		}
		v5, err := property[T5](e, key5)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
			v3,
			v4,
			v5,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
		key3,
		key4,
		key5,
	)
}

func Derived7[T0, T1, T2, T3, T4, T5, T6 any](
	key0 string,
	key1 string,
	key2 string,
	key3 string,
	key4 string,
	key5 string,
	key6 string,
	fn func(T0, T1, T2, T3, T4, T5, T6) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		v3, err := property[T3](e, key3)
		if err != nil {
			return nil, err
		}
		v4, err := property[T4](e, key4)
		if err != nil {
			return nil, err
		}
		v5, err := property[T5](e, key5)
		if err != nil {
			return nil, err
		}
		v6, err := property[T6](e, key6)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
			v3,
			v4,
			v5,
			v6,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
		key3,
		key4,
		key5,
		key6,
	)
}

func Derived8[T0, T1, T2, T3, T4, T5, T6, T7 any](
	key0 string,
	key1 string,
	key2 string,
	key3 string,
	key4 string,
	key5 string,
	key6 string,
	key7 string,
	fn func(T0, T1, T2, T3, T4, T5, T6, T7) any,
) *Registration {
	compute := func(e Observable) (any, error) {
		v0, err := property[T0](e, key0)
		if err != nil {
			return nil, err
		}
		v1, err := property[T1](e, key1)
		if err != nil {
			return nil, err
		}
		v2, err := property[T2](e, key2)
		if err != nil {
			return nil, err
		}
		v3, err := property[T3](e, key3)
		if err != nil {
			return nil, err
		}
		v4, err := property[T4](e, key4)
		if err != nil {
			return nil, err
		}
		v5, err := property[T5](e, key5)
		if err != nil {
			return nil, err
		}
		v6, err := property[T6](e, key6)
		if err != nil {
			return nil, err
		}
		v7, err := property[T7](e, key7)
		if err != nil {
			return nil, err
		}
		return fn(
			v0,
			v1,
			v2,
			v3,
			v4,
			v5,
			v6,
			v7,
		), nil
	}
	return keysRegistration(
		compute,
		key0,
		key1,
		key2,
		key3,
		key4,
		key5,
		key6,
		key7,
	)
}
